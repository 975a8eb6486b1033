package filesystem

import (
	"errors"
	"os"

	"github.com/stretchr/testify/mock"
)

var errFake = errors.New("fake failure")

type mockOS struct {
	mock.Mock
}

func (m *mockOS) ReadDir(name string) ([]os.DirEntry, error) {
	args := m.Called(name)

	entries, _ := args.Get(0).([]os.DirEntry)

	return entries, args.Error(1)
}

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) LookupUser(uid string) (string, error) {
	args := m.Called(uid)

	return args.String(0), args.Error(1)
}

func (m *mockUsers) LookupGroup(gid string) (string, error) {
	args := m.Called(gid)

	return args.String(0), args.Error(1)
}
