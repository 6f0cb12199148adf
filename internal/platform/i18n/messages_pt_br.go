package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, "app.name", "NLW Copa")
	message.SetString(lang, "title.landing", "%s | Crie seu bolão")
	message.SetString(lang, "meta.description", "Crie seu próprio bolão da copa e compartilhe entre amigos.")

	// Landing page
	message.SetString(lang, "landing.headline", "Crie seu próprio bolão da copa e compartilhe entre amigos!")
	message.SetString(lang, "landing.users_using", "pessoas já estão usando")
	message.SetString(lang, "landing.hint", "Após criar seu bolão, você receberá um código único que poderá usar para convidar outras pessoas 🚀")
	message.SetString(lang, "landing.preview_alt", "Dois celulares exibindo uma prévia da aplicação móvel")
	message.SetString(lang, "stats.pools", "Bolões criados")
	message.SetString(lang, "stats.guesses", "Palpites enviados")

	// Pool form
	message.SetString(lang, "form.title_placeholder", "Qual nome do seu bolão?")
	message.SetString(lang, "form.title_label", "Nome do bolão")
	message.SetString(lang, "form.submit", "Criar meu bolão")
	message.SetString(lang, "form.code_label", "Código do bolão")

	// Notices
	message.SetString(lang, "notice.pool_created", "Bolão criado com sucesso, o código foi copiado para a área de transferência!")
	message.SetString(lang, "notice.pool_failed", "Falha ao criar o bolão, tente novamente mais tarde.")
	message.SetString(lang, "notice.pool_in_progress", "Seu bolão ainda está sendo criado, aguarde.")
	message.SetString(lang, "notice.title_required", "Informe o nome do bolão.")

	// Errors
	message.SetString(lang, "error.title", "Algo deu errado")
	message.SetString(lang, "error.not_found", "Página não encontrada.")
	message.SetString(lang, "error.unavailable", "Não foi possível carregar os dados agora. Tente novamente em instantes.")
	message.SetString(lang, "error.internal", "Erro interno. Tente novamente mais tarde.")
	message.SetString(lang, "error.back_home", "Voltar para o início")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
}
