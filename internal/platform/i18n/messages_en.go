package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	message.SetString(lang, "app.name", "NLW Copa")
	message.SetString(lang, "title.landing", "%s | Create your pool")
	message.SetString(lang, "meta.description", "Create your own World Cup betting pool and share it with friends.")

	// Landing page
	message.SetString(lang, "landing.headline", "Create your own World Cup betting pool and share it with friends!")
	message.SetString(lang, "landing.users_using", "people are already playing")
	message.SetString(lang, "landing.hint", "After creating your pool you will get a unique code you can use to invite other people 🚀")
	message.SetString(lang, "landing.preview_alt", "Two phones showing a preview of the mobile app")
	message.SetString(lang, "stats.pools", "Pools created")
	message.SetString(lang, "stats.guesses", "Guesses sent")

	// Pool form
	message.SetString(lang, "form.title_placeholder", "What is your pool called?")
	message.SetString(lang, "form.title_label", "Pool name")
	message.SetString(lang, "form.submit", "Create my pool")
	message.SetString(lang, "form.code_label", "Pool code")

	// Notices
	message.SetString(lang, "notice.pool_created", "Pool created, the code was copied to your clipboard!")
	message.SetString(lang, "notice.pool_failed", "Could not create the pool, please try again later.")
	message.SetString(lang, "notice.pool_in_progress", "Your pool is still being created, please wait.")
	message.SetString(lang, "notice.title_required", "Enter a name for the pool.")

	// Errors
	message.SetString(lang, "error.title", "Something went wrong")
	message.SetString(lang, "error.not_found", "Page not found.")
	message.SetString(lang, "error.unavailable", "We could not load the page data right now. Please try again shortly.")
	message.SetString(lang, "error.internal", "Internal error. Please try again later.")
	message.SetString(lang, "error.back_home", "Back to home")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
}
