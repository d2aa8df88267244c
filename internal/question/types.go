package question

// Type identifies how a question is answered.
type Type string

const (
	// SingleAnswer questions accept exactly one option.
	SingleAnswer Type = "single-answer"
	// MultipleAnswer questions accept any subset of options.
	MultipleAnswer Type = "multiple-answer"
	// FreeForm questions accept typed text.
	FreeForm Type = "free-form"
)

// Known reports whether the type is one the quiz engine can render.
func (t Type) Known() bool {
	switch t {
	case SingleAnswer, MultipleAnswer, FreeForm:
		return true
	default:
		return false
	}
}

// Bank is the question bank file schema loaded from JSON or YAML.
type Bank struct {
	Version   int        `json:"version,omitempty" yaml:"version,omitempty"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
	Feedback  Feedback   `json:"feedback,omitempty" yaml:"feedback,omitempty"`
}

// Question is a single quiz question and its answer key.
type Question struct {
	ID      string    `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt  string    `json:"question" yaml:"question"`
	Type    Type      `json:"type" yaml:"type"`
	Options []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Answer  AnswerKey `json:"answer" yaml:"answer"`
}

// Feedback holds optional per-tier result messages for a bank.
type Feedback struct {
	Perfect   string `json:"perfect,omitempty" yaml:"perfect,omitempty"`
	Excellent string `json:"excellent,omitempty" yaml:"excellent,omitempty"`
	Good      string `json:"good,omitempty" yaml:"good,omitempty"`
	Weak      string `json:"weak,omitempty" yaml:"weak,omitempty"`
	Poor      string `json:"poor,omitempty" yaml:"poor,omitempty"`
}
