package common

const (
	BaseWidth  = 960
	BaseHeight = 540
)
