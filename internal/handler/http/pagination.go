package http

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-uaa/models"
)

// pageableFromRequest reads the "page", "size" and repeated
// "sort=property[,asc|desc]" query parameters. Size is clamped to
// [models.MaxPageSize]. The end offset of the requested page, (page+1)*size,
// must fit in an int64.
func pageableFromRequest(r *http.Request) (models.Pageable, error) {
	query := r.URL.Query()
	pageable := models.Pageable{Size: models.DefaultPageSize}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return models.Pageable{}, fmt.Errorf("%w: page %q", ErrInvalidPagination, raw)
		}
		pageable.Page = page
	}

	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return models.Pageable{}, fmt.Errorf("%w: size %q", ErrInvalidPagination, raw)
		}
		pageable.Size = min(size, models.MaxPageSize)
	}

	if int64(pageable.Page) > math.MaxInt64/int64(pageable.Size)-1 {
		return models.Pageable{}, fmt.Errorf("%w: page %d is out of range", ErrInvalidPagination, pageable.Page)
	}

	for _, raw := range query["sort"] {
		property, direction, _ := strings.Cut(raw, ",")
		if property == "" {
			continue
		}
		pageable.Sort = append(pageable.Sort, models.Sort{
			Property:  property,
			Ascending: !strings.EqualFold(direction, "desc"),
		})
	}

	return pageable, nil
}

// setPaginationHeaders writes X-Total-Count and an RFC 5988 Link header
// with next, prev, last and first relations.
func setPaginationHeaders[T any](w http.ResponseWriter, page models.Page[T], baseURL string) {
	w.Header().Set("X-Total-Count", strconv.FormatInt(page.TotalElements, 10))

	links := make([]string, 0, 4)
	if page.Number+1 < page.TotalPages() {
		links = append(links, pageLink(baseURL, page.Number+1, page.Size, "next"))
	}
	if page.Number > 0 {
		links = append(links, pageLink(baseURL, page.Number-1, page.Size, "prev"))
	}
	links = append(links,
		pageLink(baseURL, page.TotalPages()-1, page.Size, "last"),
		pageLink(baseURL, 0, page.Size, "first"),
	)

	w.Header().Set("Link", strings.Join(links, ","))
}

func pageLink(baseURL string, number, size int, rel string) string {
	return fmt.Sprintf(`<%s?page=%d&size=%d>; rel="%s"`, baseURL, number, size, rel)
}
