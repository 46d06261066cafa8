package criteria

import (
	"fmt"
	"strings"

	"gym_page_auditor/internal/application/rules"
	"gym_page_auditor/internal/domain/models"
	"gym_page_auditor/internal/pkg/markup"
)

type ImageStats struct {
	Meaningful int
	Modern     int
	Lazy       int
}

// CountImages skips decorative assets and images with neither src nor srcset.
func CountImages(cfg *rules.Imagery, images []markup.Image) ImageStats {
	var stats ImageStats
	for _, img := range images {
		if img.Src == "" && img.Srcset == "" {
			continue
		}
		if cfg.Excluded(img.Src + " " + img.Srcset + " " + img.Alt + " " + img.Class) {
			continue
		}
		stats.Meaningful++
		if cfg.Modern(img.Src + " " + img.Srcset) {
			stats.Modern++
		}
		if img.Loading == "lazy" {
			stats.Lazy++
		}
	}
	return stats
}

func EvaluateImagery(cfg *rules.Imagery, p *Page) models.Criterion {
	s := CountImages(cfg, p.Images)

	enough := s.Meaningful >= cfg.MinImages
	optimised := s.Modern >= cfg.MinModern || s.Lazy >= cfg.MinLazy

	var b strings.Builder
	fmt.Fprintf(&b, "Meaningful images: %d (target at least %d). Modern-format images: %d (target at least %d). Lazy-loaded images: %d (target at least %d).",
		s.Meaningful, cfg.MinImages, s.Modern, cfg.MinModern, s.Lazy, cfg.MinLazy)
	if !enough {
		fmt.Fprintf(&b, " Action: add more real photos of the club (currently %d, target at least %d).", s.Meaningful, cfg.MinImages)
	}
	if !optimised {
		fmt.Fprintf(&b, " Action: serve images as WebP/AVIF (currently %d, target at least %d) or lazy-load them (currently %d, target at least %d).",
			s.Modern, cfg.MinModern, s.Lazy, cfg.MinLazy)
	}

	return models.Criterion{Pass: enough && optimised, Evidence: b.String()}
}
