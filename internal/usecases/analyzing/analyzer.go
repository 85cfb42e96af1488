package analyzing

import (
	"fmt"
	"unicode/utf16"

	"github.com/vfg2006/seller-calc-api/internal/domain"
)

const (
	TitleLimit       = 80
	BulletPointLimit = 100
	SearchTermLimit  = 250

	nearLimitRatio = 0.8
)

// Length conta caracteres em unidades UTF-16, como o navegador conta
func Length(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// Count avalia um campo contra o limite informado
func Count(field, text string, max int) domain.FieldCount {
	current := Length(text)

	status := domain.ContentStatusOK
	switch {
	case current > max:
		status = domain.ContentStatusOver
	case float64(current) > float64(max)*nearLimitRatio:
		status = domain.ContentStatusNear
	}

	return domain.FieldCount{
		Field:     field,
		Current:   current,
		Max:       max,
		Remaining: max - current,
		Status:    status,
	}
}

// Analyze verifica título, bullet points e linhas de termos de busca
func Analyze(listing domain.Listing) domain.ContentReport {
	report := domain.ContentReport{
		Title:        Count("title", listing.Title, TitleLimit),
		BulletPoints: make([]domain.FieldCount, 0, len(listing.BulletPoints)),
		SearchTerms:  make([]domain.FieldCount, 0, len(listing.SearchTerms)),
	}

	for i, bullet := range listing.BulletPoints {
		report.BulletPoints = append(report.BulletPoints, Count(fmt.Sprintf("bullet_point_%d", i+1), bullet, BulletPointLimit))
	}
	for i, line := range listing.SearchTerms {
		report.SearchTerms = append(report.SearchTerms, Count(fmt.Sprintf("search_terms_%d", i+1), line, SearchTermLimit))
	}

	report.WithinLimits = report.Title.Status != domain.ContentStatusOver &&
		!anyOver(report.BulletPoints) && !anyOver(report.SearchTerms)

	return report
}

func anyOver(counts []domain.FieldCount) bool {
	for _, c := range counts {
		if c.Status == domain.ContentStatusOver {
			return true
		}
	}
	return false
}
