package voxel

const (
	EMPTY byte = 0
	SOLID byte = 1
)
