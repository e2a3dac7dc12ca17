// Package pagination provides query-parameter schemas for paginated
// list endpoints.
//
// Two equivalent schemas are supported: page/size (1-based page number
// with a capped page size) and offset/limit. Both parse from
// url.Values and validate with standard range constraints; violations
// surface as RFC 9457 validation problems.
//
//	p, err := pagination.ParsePageSize(r.URL.Query())
//	if err != nil {
//	    return err // 422 problem naming the offending parameter
//	}
//	offset, limit := p.OffsetLimit()
package pagination
