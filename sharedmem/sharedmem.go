// Package sharedmem attaches to POSIX shared memory areas that an external
// producer keeps filled with camera frames.
package sharedmem

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ShmDir is where the OS exposes named POSIX shared memory objects as files.
const ShmDir = "/dev/shm"

// Region is an attached shared memory area. The producer process owns and
// refreshes the contents; readers must hold the lock while touching Data.
type Region struct {
	name string
	fd   int
	data []byte
}

// Attach maps the shared memory area with the given POSIX name into the
// process. A leading '/' in the name is accepted and stripped.
func Attach(name string) (*Region, error) {
	base := strings.TrimPrefix(name, "/")
	region, err := AttachPath(filepath.Join(ShmDir, base))
	if err != nil {
		return nil, err
	}
	region.name = name
	return region, nil
}

// AttachPath maps the shared memory file at an explicit filesystem path.
func AttachPath(path string) (*Region, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "opening shared memory %s", path)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "stat shared memory %s", path)
	}

	data, err := unix.Mmap(fd, 0, int(stat.Size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "mapping shared memory %s", path)
	}

	return &Region{name: filepath.Base(path), fd: fd, data: data}, nil
}

// Valid reports whether the region is currently mapped.
func (r *Region) Valid() bool {
	return r != nil && r.data != nil
}

// Name returns the name the region was attached under.
func (r *Region) Name() string {
	return r.name
}

// Size returns the byte count of the mapped area.
func (r *Region) Size() int {
	return len(r.data)
}

// Data returns the mapped bytes. The producer overwrites them at its own
// cadence; callers must hold the lock for the duration of any read.
func (r *Region) Data() []byte {
	return r.data
}

// Lock acquires the exclusive-access lock shared with the producer.
func (r *Region) Lock() error {
	return unix.Flock(r.fd, unix.LOCK_EX)
}

// Unlock releases the exclusive-access lock.
func (r *Region) Unlock() error {
	return unix.Flock(r.fd, unix.LOCK_UN)
}

// Close unmaps the area and closes its descriptor.
func (r *Region) Close() error {
	if r.data != nil {
		if err := unix.Munmap(r.data); err != nil {
			return errors.Wrap(err, "unmapping shared memory")
		}
		r.data = nil
	}
	return unix.Close(r.fd)
}
