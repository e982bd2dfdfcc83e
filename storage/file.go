package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/kitaptakip/bot-telegram/model/user"
)

// schemaVersion is the current on-disk envelope version.
const schemaVersion = 1

type usersFile struct {
	Version int                  `json:"version"`
	Users   map[string]user.User `json:"users"`
}

type adminsFile struct {
	Version int      `json:"version"`
	Admins  []string `json:"admins"`
}

type usersStorageFile struct {
	path  string
	mx    sync.RWMutex
	users map[string]user.User
}

// NewUsers opens the file backed user storage. A missing file yields an empty
// collection, a corrupt file or an unknown schema version is an error.
func NewUsers(path string) (s Users, err error) {
	sf := &usersStorageFile{
		path:  path,
		users: map[string]user.User{},
	}
	var f usersFile
	err = loadFile(path, &f)
	if err == nil && f.Users != nil {
		sf.users = f.Users
	}
	if err == nil {
		s = sf
	}
	return
}

func (sf *usersStorageFile) Get(ctx context.Context, id string) (u user.User, err error) {
	sf.mx.RLock()
	defer sf.mx.RUnlock()
	u, found := sf.users[id]
	switch found {
	case true:
		u = copyUser(u)
	default:
		err = fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return
}

func (sf *usersStorageFile) Put(ctx context.Context, u user.User) (err error) {
	sf.mx.Lock()
	defer sf.mx.Unlock()
	prev, found := sf.users[u.Id]
	sf.users[u.Id] = copyUser(u)
	err = saveFile(sf.path, usersFile{
		Version: schemaVersion,
		Users:   sf.users,
	})
	if err != nil {
		// roll the in-memory copy back, the prior snapshot stays authoritative
		switch found {
		case true:
			sf.users[u.Id] = prev
		default:
			delete(sf.users, u.Id)
		}
		err = fmt.Errorf("%w: %s", ErrInternal, err)
	}
	return
}

func (sf *usersStorageFile) List(ctx context.Context) (us []user.User, err error) {
	sf.mx.RLock()
	defer sf.mx.RUnlock()
	for _, u := range sf.users {
		us = append(us, copyUser(u))
	}
	slices.SortFunc(us, func(a, b user.User) int {
		switch {
		case a.Id < b.Id:
			return -1
		case a.Id > b.Id:
			return 1
		}
		return 0
	})
	return
}

type adminsStorageFile struct {
	path    string
	superId string
	mx      sync.RWMutex
	admins  []string
}

// NewAdmins opens the file backed admin set. The super admin id is injected
// into the set when absent, both on load and after every mutation.
func NewAdmins(path, superId string) (s Admins, err error) {
	sf := &adminsStorageFile{
		path:    path,
		superId: superId,
	}
	var f adminsFile
	err = loadFile(path, &f)
	if err == nil {
		sf.admins = f.Admins
		if !slices.Contains(sf.admins, superId) {
			sf.admins = append(sf.admins, superId)
		}
		s = sf
	}
	return
}

func (sf *adminsStorageFile) List(ctx context.Context) (ids []string, err error) {
	sf.mx.RLock()
	defer sf.mx.RUnlock()
	ids = slices.Clone(sf.admins)
	return
}

func (sf *adminsStorageFile) Contains(ctx context.Context, id string) (member bool, err error) {
	sf.mx.RLock()
	defer sf.mx.RUnlock()
	member = slices.Contains(sf.admins, id)
	return
}

func (sf *adminsStorageFile) Add(ctx context.Context, id string) (err error) {
	sf.mx.Lock()
	defer sf.mx.Unlock()
	if slices.Contains(sf.admins, id) {
		return
	}
	sf.admins = append(sf.admins, id)
	err = saveFile(sf.path, adminsFile{
		Version: schemaVersion,
		Admins:  sf.admins,
	})
	if err != nil {
		sf.admins = sf.admins[:len(sf.admins)-1]
		err = fmt.Errorf("%w: %s", ErrInternal, err)
	}
	return
}

func (sf *adminsStorageFile) Remove(ctx context.Context, id string) (err error) {
	sf.mx.Lock()
	defer sf.mx.Unlock()
	switch {
	case id == sf.superId:
		err = fmt.Errorf("%w: super admin %s", ErrProtected, id)
	case !slices.Contains(sf.admins, id):
		err = fmt.Errorf("%w: admin %s", ErrNotFound, id)
	default:
		prev := sf.admins
		next := slices.Clone(sf.admins)
		next = slices.DeleteFunc(next, func(a string) bool {
			return a == id
		})
		sf.admins = next
		err = saveFile(sf.path, adminsFile{
			Version: schemaVersion,
			Admins:  sf.admins,
		})
		if err != nil {
			sf.admins = prev
			err = fmt.Errorf("%w: %s", ErrInternal, err)
		}
	}
	return
}

type envelope struct {
	Version int `json:"version"`
}

func loadFile(path string, dst any) (err error) {
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		err = nil
	case err == nil:
		var env envelope
		err = sonic.Unmarshal(data, &env)
		if err == nil && env.Version != schemaVersion {
			err = fmt.Errorf("%w: %d in %s", ErrVersion, env.Version, path)
		}
		if err == nil {
			err = sonic.Unmarshal(data, dst)
		}
	}
	return
}

func saveFile(path string, src any) (err error) {
	data, err := sonic.MarshalIndent(src, "", "    ")
	var tmp string
	if err == nil {
		tmp = filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
		err = os.WriteFile(tmp, data, 0o600)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	return
}

func copyUser(u user.User) (c user.User) {
	c = u
	c.Watches = make(map[string]user.Watch, len(u.Watches))
	for k, w := range u.Watches {
		c.Watches[k] = w
	}
	return
}
