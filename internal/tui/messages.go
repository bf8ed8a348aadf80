package tui

type refreshDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type entitlementDoneMsg struct {
	err error
}

type quotaMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
