package modularity_test

import (
	"strings"
	"testing"

	"github.com/abdidvp/modkraft/internal/domain/modularity"
	"github.com/stretchr/testify/assert"
)

func method(bodyLines int) []string {
	return append([]string{"def long_one(self):"}, repeat(bodyLines, "    x%d = 1")...)
}

func TestFindIndicators_None(t *testing.T) {
	assert.Equal(t, []string{}, modularity.FindIndicators(nil))
}

func TestFindIndicators_LongMethod(t *testing.T) {
	assert.Contains(t, modularity.FindIndicators(method(21)), modularity.IndicatorLongMethod)
	assert.NotContains(t, modularity.FindIndicators(method(20)), modularity.IndicatorLongMethod)
}

func TestFindIndicators_LongMethodEndsAtNextDef(t *testing.T) {
	lines := append(method(10), "    def inner(self):")
	lines = append(lines, repeat(10, "        y%d = 2")...)
	assert.NotContains(t, modularity.FindIndicators(lines), modularity.IndicatorLongMethod)
}

func TestFindIndicators_DeepNesting(t *testing.T) {
	deep := []string{"def f():", strings.Repeat(" ", 16) + "return 1"}
	assert.Contains(t, modularity.FindIndicators(deep), modularity.IndicatorDeepNesting)

	tabs := []string{"def f():", "\t\t\t\treturn 1"}
	assert.Contains(t, modularity.FindIndicators(tabs), modularity.IndicatorDeepNesting)

	shallow := []string{"def f():", strings.Repeat(" ", 12) + "return 1", strings.Repeat(" ", 20)}
	assert.NotContains(t, modularity.FindIndicators(shallow), modularity.IndicatorDeepNesting)
}

func TestFindIndicators_TooManyFields(t *testing.T) {
	got := modularity.FindIndicators(repeat(16, "    f%d = models.CharField(max_length=10)"))
	assert.Equal(t, []string{"too many fields (16)"}, got)

	assert.Empty(t, modularity.FindIndicators(repeat(15, "    f%d = models.CharField(max_length=10)")))
}

func TestFindIndicators_RepeatedConfiguration(t *testing.T) {
	got := modularity.FindIndicators(repeat(6, "    list_display = ('f%d',)"))
	assert.Equal(t, []string{modularity.IndicatorRepeatedConfig}, got)

	assert.Empty(t, modularity.FindIndicators(repeat(5, "    list_display = ('f%d',)")))

	mixed := append(repeat(3, "    list_filter = ('f%d',)"), repeat(3, "    search_fields = ('f%d',)")...)
	assert.Empty(t, modularity.FindIndicators(mixed))
}

func TestFindIndicators_FixedOrder(t *testing.T) {
	lines := append([]string{}, repeat(6, "    verbose_name = 'v%d'")...)
	lines = append(lines, repeat(16, "    f%d = CharField()")...)
	lines = append(lines, strings.Repeat(" ", 16)+"pass")
	lines = append(lines, method(25)...)

	got := modularity.FindIndicators(lines)
	assert.Equal(t, []string{
		modularity.IndicatorLongMethod,
		modularity.IndicatorDeepNesting,
		"too many fields (16)",
		modularity.IndicatorRepeatedConfig,
	}, got)
}
