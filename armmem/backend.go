package armmem

// Backend is the external memory interface consumed by the core. A
// return of false tells the bus to raise the appropriate abort; the
// bus never interprets the backend's internal failure reason.
type Backend interface {
	ReadBytes(addr uint64, buf []byte, privileged bool) bool
	WriteBytes(addr uint64, buf []byte, privileged bool) bool
}
