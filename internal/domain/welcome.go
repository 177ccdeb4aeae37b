package domain

import "fmt"

var subjectTexts = map[Subject]string{
	SubjectAPI:       "pertanyaan API",
	SubjectTechnical: "masalah teknis",
	SubjectBilling:   "billing & pembayaran",
	SubjectGeneral:   "pertanyaan umum",
}

// SubjectText returns the localized description of a support subject.
func SubjectText(s Subject) string {
	if text, ok := subjectTexts[s]; ok {
		return text
	}
	return "pertanyaan Anda"
}

// WelcomeMessage builds the greeting appended to every new session.
func WelcomeMessage(c *Customer) *Message {
	text := fmt.Sprintf(
		"Halo %s! Selamat datang di SXTream Support. Username Anda: @%s. Saya siap membantu Anda dengan %s. Ada yang bisa saya bantu hari ini?",
		c.Name, c.Username, SubjectText(c.Subject),
	)
	return NewMessage(KindAgent, text, "System")
}

// TransferMessage announces a handoff to another agent.
func TransferMessage(agentName string) *Message {
	return NewMessage(KindSystem, fmt.Sprintf("Chat telah ditransfer ke %s", agentName), "System")
}

// EndMessage is the terminal notice appended when a chat is closed.
func EndMessage() *Message {
	return NewMessage(KindSystem, "Chat session telah berakhir. Terima kasih telah menggunakan layanan kami.", "System")
}
