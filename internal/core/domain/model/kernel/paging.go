package kernel

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
)

// MinPageNumber is the first valid page number. Pages are 1-based.
const MinPageNumber = 1

// MinPageSize is the smallest valid page size.
const MinPageSize = 1

// ErrPageRequestIsNotConstructed indicates that a PageRequest was not created
// through the NewPageRequest constructor.
var ErrPageRequestIsNotConstructed = errs.NewValueIsRequiredError(
	"page request must be created via NewPageRequest constructor")

// PageRequest is a value object describing one page of a paged read.
// The zero value is invalid; use NewPageRequest.
type PageRequest struct {
	pageNumber int
	pageSize   int

	isConstructed bool
}

// NewPageRequest validates and creates a page request.
// pageNumber is 1-based; both pageNumber and pageSize must be positive.
func NewPageRequest(pageNumber, pageSize int) (PageRequest, error) {
	request := PageRequest{isConstructed: true}

	if err := errors.Join(
		request.setPageNumber(pageNumber),
		request.setPageSize(pageSize),
	); err != nil {
		return PageRequest{}, err
	}

	return request, nil
}

// PageNumber returns the 1-based page number.
func (p PageRequest) PageNumber() int {
	return p.pageNumber
}

// PageSize returns the number of items per page.
func (p PageRequest) PageSize() int {
	return p.pageSize
}

// Offset returns the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	return (p.pageNumber - 1) * p.pageSize
}

// Validate ensures the PageRequest was created through NewPageRequest.
func (p PageRequest) Validate() error {
	if !p.isConstructed {
		return ErrPageRequestIsNotConstructed
	}
	return nil
}

func (p *PageRequest) setPageNumber(pageNumber int) error {
	if pageNumber < MinPageNumber {
		return errs.NewValueIsInvalidErrorWithCause("pageNumber",
			fmt.Errorf("%d is less than %d", pageNumber, MinPageNumber))
	}
	p.pageNumber = pageNumber
	return nil
}

func (p *PageRequest) setPageSize(pageSize int) error {
	if pageSize < MinPageSize {
		return errs.NewValueIsInvalidErrorWithCause("pageSize",
			fmt.Errorf("%d is less than %d", pageSize, MinPageSize))
	}
	p.pageSize = pageSize
	return nil
}

// PagedResult is a response envelope carrying one page of items together with
// the total count the page was cut from. Page metadata is derived, never stored.
type PagedResult[T any] struct {
	Items      []T
	PageNumber int
	PageSize   int
	TotalCount int
}

// NewPagedResult wraps a page of items with the originating request and total count.
func NewPagedResult[T any](items []T, page PageRequest, totalCount int) PagedResult[T] {
	return PagedResult[T]{
		Items:      items,
		PageNumber: page.PageNumber(),
		PageSize:   page.PageSize(),
		TotalCount: totalCount,
	}
}

// TotalPages returns ceil(TotalCount / PageSize).
func (r PagedResult[T]) TotalPages() int {
	if r.PageSize <= 0 {
		return 0
	}
	return (r.TotalCount + r.PageSize - 1) / r.PageSize
}

// HasPreviousPage reports whether a page precedes this one.
func (r PagedResult[T]) HasPreviousPage() bool {
	return r.PageNumber > MinPageNumber
}

// HasNextPage reports whether a page follows this one.
func (r PagedResult[T]) HasNextPage() bool {
	return r.PageNumber < r.TotalPages()
}

// MapPagedResult converts the items of a paged result while preserving its
// page metadata. Used to map domain pages onto read-model pages.
func MapPagedResult[T, U any](result PagedResult[T], mapFn func(T) U) PagedResult[U] {
	items := make([]U, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, mapFn(item))
	}

	return PagedResult[U]{
		Items:      items,
		PageNumber: result.PageNumber,
		PageSize:   result.PageSize,
		TotalCount: result.TotalCount,
	}
}
