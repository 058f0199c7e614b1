package mail

import (
	"fmt"
	"html"
)

func verificationCodeTemplate(code string) (subject, text, htmlBody string) {
	subject = "Votre code de vérification"
	text = fmt.Sprintf("Voici votre code de vérification : %s\n\nCe code expire dans 10 minutes.", code)
	htmlBody = fmt.Sprintf("<b>Voici votre code de vérification :</b> <h2>%s</h2><p>Ce code expire dans 10 minutes.</p>", html.EscapeString(code))
	return subject, text, htmlBody
}

func welcomeTemplate(name, clientURL string) (subject, text string) {
	subject = "Bienvenue !"
	text = fmt.Sprintf(`Bonjour %s,

Votre adresse e-mail a bien été vérifiée. Bienvenue sur GreenThumb !

Connectez-vous : %s/login

L'équipe GreenThumb`, name, clientURL)
	return subject, text
}
