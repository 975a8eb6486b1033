package schema

import (
	"os"
	"os/user"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// ReadDir wraps around [os.ReadDir].
func (*OS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// LookupEnv wraps around [os.LookupEnv].
func (*OS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// UserConfigDir wraps around [os.UserConfigDir].
func (*OS) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// Users is an implementation wrapping the user and group database lookups.
type Users struct{}

// LookupUser wraps around [user.LookupId] and returns the username.
func (*Users) LookupUser(uid string) (string, error) {
	u, err := user.LookupId(uid)
	if err != nil {
		return "", err
	}

	return u.Username, nil
}

// LookupGroup wraps around [user.LookupGroupId] and returns the group name.
func (*Users) LookupGroup(gid string) (string, error) {
	g, err := user.LookupGroupId(gid)
	if err != nil {
		return "", err
	}

	return g.Name, nil
}
