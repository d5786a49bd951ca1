package vpic

import "context"

// PageIter walks a paginated endpoint one page at a time. Pages are
// fetched lazily: each Next call issues exactly one request, so a
// caller that stops early never pays for pages it didn't read.
type PageIter struct {
	fetch func(ctx context.Context, page int) ([]*Record, error)
	page  int
	done  bool
}

func newPageIter(start int, fetch func(ctx context.Context, page int) ([]*Record, error)) *PageIter {
	return &PageIter{fetch: fetch, page: start}
}

// Next fetches the next page. It returns an empty slice and nil error
// once the server runs out of results; callers loop until that.
//
//	for {
//		page, err := it.Next(ctx)
//		if err != nil || len(page) == 0 {
//			break
//		}
//		...
//	}
func (it *PageIter) Next(ctx context.Context) ([]*Record, error) {
	if it.done {
		return nil, nil
	}
	records, err := it.fetch(ctx, it.page)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		it.done = true
		return nil, nil
	}
	it.page++
	return records, nil
}

// Page returns the number of the page the next call to Next will fetch.
func (it *PageIter) Page() int {
	return it.page
}
