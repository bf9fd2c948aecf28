package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	for _, lang := range []language.Tag{language.Portuguese, language.BrazilianPortuguese} {
		message.SetString(lang, TitleKey, "Diretório de Usuários")
		message.SetString(lang, SubtitleKey, "Pessoas obtidas da API de usuários")
		message.SetString(lang, SearchPlaceholderKey, "Buscar por nome, e-mail ou usuário")
		message.SetString(lang, ReloadLabelKey, "Recarregar")
		message.SetString(lang, RetryLabelKey, "Tentar novamente")
		message.SetString(lang, LoadingKey, "Carregando usuários...")
		message.SetString(lang, NoUsersKey, "Nenhum usuário para exibir")
		message.SetString(lang, AddressHeadingKey, "Endereço")
		message.SetString(lang, SummaryKey, "Exibindo %d de %d usuários · atualizado %s")
		message.SetString(lang, NeverUpdatedKey, "nunca")
		message.SetString(lang, ErrorPrefixKey, "Falha ao carregar os usuários. %s")
		message.SetString(lang, ErrorNetworkKey, "Verifique sua conexão com a internet e tente novamente.")
		message.SetString(lang, ErrorHTTPKey, "Erro no servidor: HTTP Error: %d - %s")
		message.SetString(lang, ErrorUnexpectedKey, "Ocorreu um erro inesperado.")
		message.SetString(lang, ErrorNoUsersDataKey, "Nenhum usuário encontrado ou formato de dados inválido")
	}
}
