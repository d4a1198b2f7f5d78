package phpunitxml

import (
	"go.uber.org/zap"

	"ptsplit/internal/domain"
)

// Composer writes the split groups into a copy of the base configuration
type Composer struct {
	templatePath string
	projectRoot  string
	logger       *zap.Logger
}

// NewComposer creates a Composer for the given template
func NewComposer(templatePath, projectRoot string, logger *zap.Logger) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{templatePath: templatePath, projectRoot: projectRoot, logger: logger}
}

// Compose loads the template, adds the balanced groups followed by the special
// case group, and saves the result to target. The special case group is returned.
func (c *Composer) Compose(groups []domain.Group, target string) (domain.Group, error) {
	doc, err := Load(c.templatePath, c.projectRoot)
	if err != nil {
		return domain.Group{}, err
	}

	doc.AddSplitGroups(groups)
	special := doc.AddSpecialCaseTests(len(groups) + 1)

	if err := doc.SaveToDisk(target); err != nil {
		return domain.Group{}, err
	}
	c.logger.Debug("wrote phpunit configuration",
		zap.String("template", c.templatePath),
		zap.String("target", target),
		zap.Int("groups", len(groups)+1))
	return special, nil
}

// IsPrepared reports whether target already carries split groups
func (c *Composer) IsPrepared(target string) bool {
	return IsPrepared(target)
}
