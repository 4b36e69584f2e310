package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var catalogLanguage = language.English

func init() {
	lang := catalogLanguage

	message.SetString(lang, "registration.reply.accepted",
		"✅ Address #%s successfully registered. Thank you!")
	message.SetString(lang, "registration.reply.booster_accepted",
		"✅ Your address has been accepted because you boosted the server! (#%s)")
	message.SetString(lang, "registration.reply.already_submitted",
		"⚠️ You have already submitted a Solana address: `%s`. Only one submission is allowed.")
	message.SetString(lang, "registration.reply.duplicate",
		"⚠️ This Solana address is already registered and cannot be used again.")
	message.SetString(lang, "registration.reply.capacity_reached",
		"⚠️ The limit of %d addresses has been reached.")
	message.SetString(lang, "registration.reply.invalid_format",
		"❌ That doesn’t look like a valid Solana address.")

	message.SetString(lang, "registration.announce.accepted",
		"#%s • %s – `%s` ✅")
	message.SetString(lang, "registration.announce.booster_accepted",
		"#%s • %s – `%s` ✅ (Booster)")
	message.SetString(lang, "registration.announce.boost_thanks",
		"🎉 Thank you for boosting the server, %s! Please send me a DM with your **Solana address** to receive your reward.")
	message.SetString(lang, "registration.announce.welcome",
		"👋 Welcome %s! Please DM me your **Solana address** to participate. (# numbering follows order of submission)")
}
