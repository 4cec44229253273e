package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int    `json:"f"`             // Frame number
	U   bool   `json:"u,omitempty"`   // Up
	D   bool   `json:"d,omitempty"`   // Down
	L   bool   `json:"l,omitempty"`   // Left
	R   bool   `json:"r,omitempty"`   // Right
	E   bool   `json:"e,omitempty"`   // Enter
	P   bool   `json:"p,omitempty"`   // Pause
	K   string `json:"k,omitempty"`   // First key pressed, by name
	Dbg bool   `json:"dbg,omitempty"` // DebugToggle
	MX  int    `json:"mx"`            // MouseX
	MY  int    `json:"my"`            // MouseY
	MM  bool   `json:"mm,omitempty"`  // MouseMoved
	MC  bool   `json:"mc,omitempty"`  // MouseClick
}

// ReplayData contains all data needed to replay a menu session
type ReplayData struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
