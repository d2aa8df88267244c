package quiz

import "quizkit/internal/question"

// LoadForm reads the bank at path, or the embedded bank when path is empty, and renders it.
// Read and decode failures are reported as a MalformedBankError. With strict set, a bank that
// fails question.Validate is rejected with the validation error.
func LoadForm(path string, strict bool) (*Form, error) {
	data, format, err := question.ReadSource(path)
	if err != nil {
		return nil, &MalformedBankError{Diagnostic: err.Error(), Err: err}
	}
	if !strict {
		return RenderData(data, format)
	}
	bank, err := question.Decode(data, format)
	if err != nil {
		return nil, &MalformedBankError{Diagnostic: err.Error(), Err: err}
	}
	if err := question.Validate(bank); err != nil {
		return nil, err
	}
	return RenderBank(bank)
}
