// package async wraps the synchronous MAC and DH operations in futures,
// for hosts that want to offload them to another goroutine.
//
// The operations themselves are not interruptible.
// A context passed to Await bounds only the wait: if it is cancelled the computation
// still runs to completion and its result is discarded.
package async

import (
	"context"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/brendoncarroll/go-cryptoprim/crypto/dhke"
	"github.com/brendoncarroll/go-cryptoprim/crypto/mac"
)

type Future[T any] interface {
	// IsDone returns whether the future is done.  It does not block.
	IsDone() bool

	// wait blocks until the future is complete or ctx is done.
	// It only returns errors from the context.
	wait(ctx context.Context) error
	// unwrap returns the result. It is unsafe to call before wait has returned nil.
	unwrap() (T, error)
}

// Go runs fn in a separate goroutine and returns a Future for its result.
func Go[T any](fn func() (T, error)) Future[T] {
	p := newPromise[T]()
	go func() {
		p.resolve(fn())
	}()
	return p
}

// Await blocks until f is complete then returns its result.
func Await[T any](ctx context.Context, f Future[T]) (T, error) {
	if err := f.wait(ctx); err != nil {
		var zero T
		return zero, err
	}
	return f.unwrap()
}

// AwaitAll waits for every future and returns their results in order.
// It returns the first error from either a future or ctx.
func AwaitAll[T any](ctx context.Context, fs ...Future[T]) ([]T, error) {
	rets := make([]T, len(fs))
	eg, ctx := errgroup.WithContext(ctx)
	for i := range fs {
		i := i
		eg.Go(func() (err error) {
			rets[i], err = Await(ctx, fs[i])
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rets, nil
}

func ComputeMAC(s mac.Scheme, msg []byte) Future[[]byte] {
	return Go(func() ([]byte, error) {
		return s.Compute(msg)
	})
}

func VerifyMAC(s mac.Scheme, tag, msg []byte) Future[bool] {
	return Go(func() (bool, error) {
		return s.Verify(tag, msg), nil
	})
}

func GenerateKeyPair(s dhke.Scheme, rng io.Reader) Future[dhke.KeyPair] {
	return Go(func() (dhke.KeyPair, error) {
		return s.GenerateKeyPair(rng)
	})
}

func DeriveKeyPair(s dhke.Scheme, priv []byte) Future[dhke.KeyPair] {
	return Go(func() (dhke.KeyPair, error) {
		return s.DeriveKeyPair(priv)
	})
}

func ComputeShared(s dhke.Scheme, priv, peerPub []byte) Future[[]byte] {
	return Go(func() ([]byte, error) {
		return s.ComputeShared(priv, peerPub)
	})
}

type promise[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func newPromise[T any]() *promise[T] {
	return &promise[T]{done: make(chan struct{})}
}

func (p *promise[T]) IsDone() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

func (p *promise[T]) resolve(x T, err error) {
	p.once.Do(func() {
		p.value, p.err = x, err
		close(p.done)
	})
}

func (p *promise[T]) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.done:
		return nil
	}
}

func (p *promise[T]) unwrap() (T, error) {
	if !p.IsDone() {
		panic("unwrap called on incomplete promise")
	}
	return p.value, p.err
}
