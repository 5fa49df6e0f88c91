package prompt

import "testing"

func TestHuhSelectRequiresOptions(t *testing.T) {
	if _, err := (Huh{}).Select("Pick", nil); err == nil {
		t.Error("Select() with no options should fail")
	}
}

func TestHuhImplementsPrompter(t *testing.T) {
	var _ Prompter = Huh{}
}
