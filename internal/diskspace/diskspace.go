// Package diskspace reports total and available capacity of the primary
// data-storage volume in binary megabytes.
package diskspace

import (
	"context"
	"errors"
	"fmt"
)

// Transport method names understood by ParseOperation.
const (
	MethodTotal = "getTotalDiskSpace"
	MethodFree  = "getFreeDiskSpace"
)

// Operation is the closed set of queries a Query can answer.
type Operation int

const (
	// OpUnsupported stands for any request that has no matching query.
	OpUnsupported Operation = iota
	// OpTotal asks for the total capacity of the volume.
	OpTotal
	// OpFree asks for the capacity available to the caller.
	OpFree
)

// ParseOperation maps a transport method name to an Operation.
// Unknown names map to OpUnsupported.
func ParseOperation(method string) Operation {
	switch method {
	case MethodTotal:
		return OpTotal
	case MethodFree:
		return OpFree
	default:
		return OpUnsupported
	}
}

func (o Operation) String() string {
	switch o {
	case OpTotal:
		return "total"
	case OpFree:
		return "free"
	default:
		return "unsupported"
	}
}

var (
	// ErrStorageUnavailable is matched by every error caused by a failed
	// statistics read of the data volume.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnsupportedOperation is returned by adapters that need an error
	// value for an OpUnsupported response.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// StorageError describes a failed statistics read.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable at %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is reports ErrStorageUnavailable as a match so callers can use errors.Is.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// Stats is one snapshot of filesystem block statistics.
type Stats struct {
	BlockSize   uint64 // bytes per block
	Blocks      uint64 // total blocks
	BlocksFree  uint64 // unused blocks, including reserved ones
	BlocksAvail uint64 // blocks usable by the calling process
}

// Statter reads block statistics for the filesystem containing path.
type Statter interface {
	Statfs(ctx context.Context, path string) (Stats, error)
}

// StatterFunc adapts a function to the Statter interface.
type StatterFunc func(ctx context.Context, path string) (Stats, error)

// Statfs calls f(ctx, path).
func (f StatterFunc) Statfs(ctx context.Context, path string) (Stats, error) {
	return f(ctx, path)
}

// Capacity holds readings taken from the same snapshot. FreeMB counts what
// the caller may use; UnreservedMB also counts blocks reserved for
// privileged users.
type Capacity struct {
	Path         string  `json:"path"`
	TotalMB      Reading `json:"total_mb"`
	FreeMB       Reading `json:"free_mb"`
	UnreservedMB Reading `json:"unreserved_mb"`
}

// Response is the outcome of Handle. Implemented is false for
// OpUnsupported, in which case Value carries no data.
type Response struct {
	Operation   Operation
	Value       Reading
	Implemented bool
}

// Query answers capacity questions for one fixed path. It holds no mutable
// state and is safe for concurrent use.
type Query struct {
	path    string
	statter Statter
}

// Option configures a Query.
type Option func(*Query)

// WithStatter replaces the platform statistics source.
func WithStatter(s Statter) Option {
	return func(q *Query) {
		q.statter = s
	}
}

// New creates a Query for the volume containing path.
func New(path string, opts ...Option) *Query {
	q := &Query{
		path:    path,
		statter: newPlatformStatter(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Path returns the path whose volume is queried.
func (q *Query) Path() string {
	return q.path
}

// TotalMB returns the total capacity of the volume in megabytes.
func (q *Query) TotalMB(ctx context.Context) (Reading, error) {
	st, err := q.stat(ctx)
	if err != nil {
		return 0, err
	}
	return ReadingFromBlocks(st.BlockSize, st.Blocks), nil
}

// FreeMB returns the capacity available to the calling process in megabytes.
// Blocks reserved for privileged users are not counted.
func (q *Query) FreeMB(ctx context.Context) (Reading, error) {
	st, err := q.stat(ctx)
	if err != nil {
		return 0, err
	}
	return ReadingFromBlocks(st.BlockSize, st.BlocksAvail), nil
}

// Capacity returns all readings from a single snapshot.
func (q *Query) Capacity(ctx context.Context) (Capacity, error) {
	st, err := q.stat(ctx)
	if err != nil {
		return Capacity{}, err
	}
	return Capacity{
		Path:         q.path,
		TotalMB:      ReadingFromBlocks(st.BlockSize, st.Blocks),
		FreeMB:       ReadingFromBlocks(st.BlockSize, st.BlocksAvail),
		UnreservedMB: ReadingFromBlocks(st.BlockSize, st.BlocksFree),
	}, nil
}

// Handle runs op. OpUnsupported is not an error: it returns a Response with
// Implemented set to false.
func (q *Query) Handle(ctx context.Context, op Operation) (Response, error) {
	var (
		value Reading
		err   error
	)

	switch op {
	case OpTotal:
		value, err = q.TotalMB(ctx)
	case OpFree:
		value, err = q.FreeMB(ctx)
	default:
		return Response{Operation: OpUnsupported}, nil
	}

	if err != nil {
		return Response{Operation: op}, err
	}
	return Response{Operation: op, Value: value, Implemented: true}, nil
}

func (q *Query) stat(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	st, err := q.statter.Statfs(ctx, q.path)
	if err != nil {
		var se *StorageError
		if errors.As(err, &se) {
			return Stats{}, err
		}
		return Stats{}, &StorageError{Path: q.path, Err: err}
	}

	// Keep free <= total inside one snapshot even if the kernel disagrees.
	if st.BlocksAvail > st.Blocks {
		st.BlocksAvail = st.Blocks
	}
	if st.BlocksFree > st.Blocks {
		st.BlocksFree = st.Blocks
	}
	return st, nil
}
