package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	for _, lang := range []language.Tag{language.English, language.AmericanEnglish} {
		message.SetString(lang, TitleKey, "User Directory")
		message.SetString(lang, SubtitleKey, "People fetched from the users API")
		message.SetString(lang, SearchPlaceholderKey, "Search by name, email or username")
		message.SetString(lang, ReloadLabelKey, "Reload")
		message.SetString(lang, RetryLabelKey, "Try again")
		message.SetString(lang, LoadingKey, "Loading users...")
		message.SetString(lang, NoUsersKey, "No users to display")
		message.SetString(lang, AddressHeadingKey, "Address")
		message.SetString(lang, SummaryKey, "Showing %d of %d users · updated %s")
		message.SetString(lang, NeverUpdatedKey, "never")
		message.SetString(lang, ErrorPrefixKey, "Failed to load user data. %s")
		message.SetString(lang, ErrorNetworkKey, "Please check your internet connection and try again.")
		message.SetString(lang, ErrorHTTPKey, "Server error: HTTP Error: %d - %s")
		message.SetString(lang, ErrorUnexpectedKey, "An unexpected error occurred.")
		message.SetString(lang, ErrorNoUsersDataKey, "No users found or invalid data format")
	}
}
