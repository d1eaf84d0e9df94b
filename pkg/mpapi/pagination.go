package mpapi

import (
	"context"
	"fmt"
)

// PageLister is implemented by every resource client that can list a
// collection. The path may be a relative collection path or an absolute
// next-page URL returned by the server.
type PageLister[T any] interface {
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*Page[T], error)
}

// PageIterator flattens a sequence of linked collection pages into one lazy
// sequence of items. Query params are applied to the first request only;
// every later request follows the server-supplied next link verbatim.
//
// An iterator's only state is its current page and next link. It is not safe
// for concurrent use; each caller should construct its own.
type PageIterator[T any] struct {
	ctx    context.Context
	client PageLister[T]
	path   string
	params *QueryParams

	page      *Page[T]
	index     int
	next      string
	started   bool
	exhausted bool

	// pendingErr holds a fetch failure discovered during HasNext so that it
	// surfaces from the following Next call, at the point the failed page
	// would be consumed.
	pendingErr error
}

// NewPageIterator creates an iterator over the collection at path. Nothing is
// fetched until the first HasNext or Next call.
func NewPageIterator[T any](ctx context.Context, client PageLister[T], path string, params *QueryParams) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:    ctx,
		client: client,
		path:   path,
		params: params,
	}
}

// HasNext reports whether another item is available. A fetch failure also
// reports true; the error is returned by the next call to Next.
func (it *PageIterator[T]) HasNext() bool {
	if it.pendingErr != nil {
		return true
	}

	err := it.advance()
	if err != nil {
		it.pendingErr = err

		return true
	}

	return !it.exhausted
}

// Next returns the next item in page order. After the final item it returns
// ErrNoMoreItems.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.pendingErr != nil {
		err := it.pendingErr
		it.pendingErr = nil

		return zero, err
	}

	err := it.advance()
	if err != nil {
		return zero, err
	}

	if it.exhausted {
		return zero, ErrNoMoreItems
	}

	item := it.page.Items[it.index]
	it.index++

	return item, nil
}

// All consumes the remaining sequence and returns it as a slice. Items already
// collected are discarded if a later page fetch fails.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to each remaining item, stopping on the first error from
// either a page fetch or fn itself.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// Reset returns the iterator to its initial state. The next consumption
// re-issues the original first request from scratch: continuation state lives
// in server-returned links, never in a client-side cursor.
func (it *PageIterator[T]) Reset() {
	it.page = nil
	it.index = 0
	it.next = ""
	it.started = false
	it.exhausted = false
	it.pendingErr = nil
}

// advance loads pages until an unconsumed item is available or the sequence
// is exhausted. Empty intermediate pages are skipped as long as a next link
// is present.
func (it *PageIterator[T]) advance() error {
	for {
		if it.exhausted {
			return nil
		}

		if it.page != nil && it.index < len(it.page.Items) {
			return nil
		}

		if it.started && it.next == "" {
			it.exhausted = true

			return nil
		}

		err := it.fetch()
		if err != nil {
			return err
		}
	}
}

func (it *PageIterator[T]) fetch() error {
	var (
		page *Page[T]
		err  error
	)

	if !it.started {
		page, err = it.client.ListWithPath(it.ctx, it.path, it.params)
		it.started = true
	} else {
		page, err = it.client.ListWithPath(it.ctx, it.next, nil)
	}

	if err != nil {
		return fmt.Errorf("fetching collection page: %w", err)
	}

	it.page = page
	it.index = 0
	it.next = page.Links.Next

	return nil
}

// PaginationOptions bounds the convenience helpers below.
type PaginationOptions struct {
	// MaxPages limits how many pages are fetched. Zero means no limit.
	MaxPages int
}

// FetchAllPages walks the collection at path and returns every item across
// all pages, in page order.
func FetchAllPages[T any](ctx context.Context, client PageLister[T], path string, params *QueryParams, options *PaginationOptions) ([]T, error) {
	var (
		items     []T
		pageCount int
	)

	currentPath := path
	currentParams := params

	for {
		page, err := client.ListWithPath(ctx, currentPath, currentParams)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", pageCount+1, err)
		}

		items = append(items, page.Items...)
		pageCount++

		if options != nil && options.MaxPages > 0 && pageCount >= options.MaxPages {
			break
		}

		if !page.Links.HasNext() {
			break
		}

		currentPath = page.Links.Next
		currentParams = nil
	}

	return items, nil
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages walks the collection at path and delivers each page on the
// returned channel. The channel is closed after the terminal page, after a
// failed fetch (delivered as a result with Err set), or when ctx is done.
func StreamPages[T any](ctx context.Context, client PageLister[T], path string, params *QueryParams, options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		var pageCount int

		currentPath := path
		currentParams := params

		for {
			page, err := client.ListWithPath(ctx, currentPath, currentParams)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page.Items}:
			case <-ctx.Done():
				return
			}

			pageCount++

			if options != nil && options.MaxPages > 0 && pageCount >= options.MaxPages {
				return
			}

			if !page.Links.HasNext() {
				return
			}

			currentPath = page.Links.Next
			currentParams = nil
		}
	}()

	return results
}
