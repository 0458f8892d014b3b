//go:build !darwin

package devicecheck

const hostOS = OSOther
