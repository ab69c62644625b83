// Package contact backs the contact form. Submissions are acknowledged
// locally and never leave the process.
package contact

import "sync"

const SuccessMessage = "Message sent successfully!"

type Message struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

// Notice is the toast shown after a submission.
type Notice struct {
	Kind string
	Text string
}

type Form struct {
	mu    sync.Mutex
	draft Message
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Draft() Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Form) SetDraft(m Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = m
}

// Submit acknowledges the current draft and clears it.
func (f *Form) Submit() Notice {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft = Message{}
	return Notice{Kind: "success", Text: SuccessMessage}
}

// Info is a line in the "contact information" card.
type Info struct {
	Label string
	Value string
	Href  string
}

type SocialLink struct {
	Label string
	Href  string
}
