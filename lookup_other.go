//go:build !darwin

package devicecheck

func hostIdiom() Idiom {
	return IdiomUnspecified
}

func hostMachine() string {
	return ""
}
