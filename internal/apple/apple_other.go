//go:build !darwin

package apple

func UserInterfaceIdiom() (int, error) {
	return -1, ErrUnsupported
}

func Machine() (string, error) {
	return "", ErrUnsupported
}
