package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/qiwenlab/proofgate/pkg/config"
	"github.com/qiwenlab/proofgate/pkg/model"
)

// ImageAspectRule checks the featured image's width/height ratio against
// the configured target. It only evaluates facts already present in the
// document metadata; it never opens image files.
type ImageAspectRule struct {
	cfg config.ImageConfig
}

func NewImageAspectRule(cfg config.ImageConfig) *ImageAspectRule {
	return &ImageAspectRule{cfg: cfg}
}

func (r *ImageAspectRule) Info() Info {
	return Info{
		ID:            "D6-001",
		Category:      "D",
		Severity:      model.SeverityError,
		BlocksPublish: true,
		Summary:       "featured image aspect ratio outside the required ratio",
	}
}

func (r *ImageAspectRule) Evaluate(rc *Context) []model.Issue {
	img := featuredImage(rc)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil
	}
	tw, th := r.cfg.AspectWidth, r.cfg.AspectHeight
	if tw <= 0 || th <= 0 {
		tw, th = 16, 9
	}
	target := float64(tw) / float64(th)
	actual := float64(img.Width) / float64(img.Height)
	tol := r.cfg.AspectTolerance
	if tol <= 0 {
		tol = 0.02
	}
	if math.Abs(actual-target) <= target*tol {
		return nil
	}
	return []model.Issue{{
		RuleID:   "D6-001",
		Category: "D",
		Severity: model.SeverityError,
		Message: fmt.Sprintf("featured image is %dx%d (ratio %.3f); required ratio is %d:%d",
			img.Width, img.Height, actual, tw, th),
		BlocksPublish: true,
		Evidence:      fmt.Sprintf("featured_image %dx%d", img.Width, img.Height),
	}}
}

// ImageFormatRule checks the featured image file format against the
// allowed set.
type ImageFormatRule struct {
	allowed map[string]bool
	display string
}

func NewImageFormatRule(cfg config.ImageConfig) *ImageFormatRule {
	allowed := make(map[string]bool, len(cfg.AllowedFormats))
	for _, f := range cfg.AllowedFormats {
		allowed[strings.ToLower(f)] = true
	}
	return &ImageFormatRule{
		allowed: allowed,
		display: strings.Join(cfg.AllowedFormats, ", "),
	}
}

func (r *ImageFormatRule) Info() Info {
	return Info{
		ID:            "D6-002",
		Category:      "D",
		Severity:      model.SeverityError,
		BlocksPublish: true,
		Summary:       "featured image format not in the allowed set",
	}
}

func (r *ImageFormatRule) Evaluate(rc *Context) []model.Issue {
	img := featuredImage(rc)
	if img == nil || img.Format == "" {
		return nil
	}
	if r.allowed[strings.ToLower(img.Format)] {
		return nil
	}
	return []model.Issue{{
		RuleID:        "D6-002",
		Category:      "D",
		Severity:      model.SeverityError,
		Message:       fmt.Sprintf("featured image format %q is not allowed (allowed: %s)", img.Format, r.display),
		BlocksPublish: true,
		Evidence:      "featured_image format " + img.Format,
	}}
}

// ImageLicenseRule requires license or credit attribution on the
// featured image before anything may publish.
type ImageLicenseRule struct{}

func (r *ImageLicenseRule) Info() Info {
	return Info{
		ID:            "D6-003",
		Category:      "D",
		Severity:      model.SeverityCritical,
		BlocksPublish: true,
		Summary:       "featured image missing license or credit attribution",
	}
}

func (r *ImageLicenseRule) Evaluate(rc *Context) []model.Issue {
	img := featuredImage(rc)
	if img == nil {
		return nil
	}
	if strings.TrimSpace(img.License) != "" || strings.TrimSpace(img.Credit) != "" {
		return nil
	}
	return []model.Issue{{
		RuleID:        "D6-003",
		Category:      "D",
		Severity:      model.SeverityCritical,
		Message:       "featured image has neither a license nor a credit line",
		BlocksPublish: true,
		Evidence:      "featured_image license/credit empty",
	}}
}

func featuredImage(rc *Context) *model.ImageMeta {
	if rc == nil || rc.Input == nil || rc.Input.Meta == nil {
		return nil
	}
	return rc.Input.Meta.FeaturedImage
}
