package i18n

// Message keys for the directory UI.
const (
	TitleKey             = "directory.title"
	SubtitleKey          = "directory.subtitle"
	SearchPlaceholderKey = "directory.search.placeholder"
	ReloadLabelKey       = "directory.reload"
	RetryLabelKey        = "directory.retry"
	LoadingKey           = "directory.loading"
	NoUsersKey           = "directory.no_users"
	AddressHeadingKey    = "directory.address"
	SummaryKey           = "directory.summary"
	NeverUpdatedKey      = "directory.never_updated"
	ErrorPrefixKey       = "directory.error.prefix"
	ErrorNetworkKey      = "directory.error.network"
	ErrorHTTPKey         = "directory.error.http"
	ErrorUnexpectedKey   = "directory.error.unexpected"
	ErrorNoUsersDataKey  = "directory.error.no_users_data"
)
