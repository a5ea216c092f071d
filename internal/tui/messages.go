package tui

type openDoneMsg struct {
	restored bool
	err      error
}

type saveDoneMsg struct {
	err error
}

type revertDoneMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
