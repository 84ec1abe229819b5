package scoring

import (
	"strings"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

// benchmarkFor matches the respondent's website domain against the industry
// keyword table and positions the overall score inside that industry's
// reference distribution. Unmatched domains fall back to the cross-industry
// bucket.
func benchmarkFor(website string, overall int) domain.IndustryBenchmark {
	industry := matchIndustry(website)

	var percentile int
	var comparison string
	switch {
	case overall >= industry.Top10:
		percentile = 90
		comparison = "top 10% del settore"
	case overall >= industry.Top25:
		percentile = 75
		comparison = "top 25% del settore"
	case overall >= industry.Average:
		percentile = 55
		comparison = "sopra la media di settore"
	default:
		percentile = 30
		comparison = "sotto la media di settore"
	}

	return domain.IndustryBenchmark{
		Industry:     industry.Name,
		AverageScore: industry.Average,
		Top25Score:   industry.Top25,
		Top10Score:   industry.Top10,
		Percentile:   percentile,
		Comparison:   comparison,
	}
}

func matchIndustry(website string) industryTable {
	domainName := strings.ToLower(strings.TrimSpace(website))
	if domainName != "" {
		for _, industry := range tables.Industries {
			for _, keyword := range industry.Keywords {
				if strings.Contains(domainName, keyword) {
					return industry
				}
			}
		}
	}
	return tables.Default
}
