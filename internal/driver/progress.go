package driver

import "time"

// ScanStatus describes where one file is in the scanning pass.
type ScanStatus string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued ScanStatus = "queued"
	// StatusScanning indicates the file is being tokenized.
	StatusScanning ScanStatus = "scanning"
	// StatusDone indicates the file finished without errors.
	StatusDone ScanStatus = "done"
	// StatusError indicates the file finished with diagnostics or failed to load.
	StatusError ScanStatus = "error"
)

// ScanEvent is a progress notification for one file.
type ScanEvent struct {
	Path    string
	Status  ScanStatus
	Tokens  int
	Elapsed time.Duration
}

// ProgressSink receives scan progress events.
type ProgressSink interface {
	OnEvent(ScanEvent)
}

// ChannelSink пересылает события в канал; nil-канал молча глотает их.
type ChannelSink struct {
	Ch chan<- ScanEvent
}

func (s ChannelSink) OnEvent(evt ScanEvent) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

type nopSink struct{}

func (nopSink) OnEvent(ScanEvent) {}
