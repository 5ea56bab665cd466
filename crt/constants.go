package crt

// SeparateChaining - Collision Resolution Technique where every bucket holds a linked chain of keys
const SeparateChaining = 1

// LinearProbing - Collision Resolution Technique (open addressing) where colliding keys are placed in the next
// available cell, wrapping around at the end of the table
const LinearProbing = 2

// Name - Returns a human readable name of a collision resolution technique
func Name(crtType int) string {
	switch crtType {
	case SeparateChaining:
		return "SeparateChaining"
	case LinearProbing:
		return "LinearProbing"
	default:
		return "Unknown"
	}
}
