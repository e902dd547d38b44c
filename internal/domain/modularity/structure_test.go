package modularity_test

import (
	"testing"

	"github.com/abdidvp/modkraft/internal/domain"
	"github.com/abdidvp/modkraft/internal/domain/modularity"
	"github.com/stretchr/testify/assert"
)

var sampleModels = []string{
	"from django.db import models",
	"import json",
	"",
	"class Brand(models.Model):",
	"    name = models.CharField(max_length=10)",
	"",
	"    class Meta:",
	"        ordering = ['name']",
	"",
	"    def __str__(self):",
	"        return self.name",
	"",
	"class SKU(models.Model):",
	"    pass",
	"",
	"class BrandAdmin(admin.ModelAdmin):",
	"    pass",
	"",
	"def helper():",
	"    pass",
	"",
	"async def fetch():",
	"    pass",
}

func TestAnalyze_CountsTopLevelDeclarations(t *testing.T) {
	a := modularity.Analyze(record(domain.KindModel, sampleModels...))

	assert.Equal(t, domain.KindModel, a.FileKind)
	assert.Equal(t, len(sampleModels), a.LineCount)
	assert.Equal(t, 3, a.ClassCount)
	assert.Equal(t, 2, a.FunctionCount)
	assert.Equal(t, 2, a.ImportCount)
	assert.Equal(t, []string{"Brand", "SKU"}, a.BusinessDomains)
	assert.Equal(t, []string{"Brand", "SKU"}, a.ModelClasses)
	assert.Empty(t, a.AdminClasses)
	assert.Empty(t, a.ComplexityIndicators)
}

func TestAnalyze_AdminClassesUseCamelCaseSuffix(t *testing.T) {
	a := modularity.Analyze(record(domain.KindAdmin,
		"class SKUAdmin(admin.ModelAdmin):",
		"class Brand_Admin(admin.ModelAdmin):",
		"class CategoryAdmin2(admin.ModelAdmin):",
		"class Administration:",
		"class BadminFoo:",
	))

	assert.Equal(t, 5, a.ClassCount)
	assert.Equal(t, []string{"SKUAdmin", "Brand_Admin", "CategoryAdmin2"}, a.AdminClasses)
	assert.Equal(t, []string{"SKU", "Brand", "Category"}, a.BusinessDomains)
}

func TestAnalyze_ViewClassesTakeEveryClass(t *testing.T) {
	a := modularity.Analyze(record(domain.KindView,
		"class OrderListView(ListView):",
		"class Helper:",
	))
	assert.Equal(t, []string{"OrderListView", "Helper"}, a.ViewClasses)
}

func TestAnalyze_EmptyFile(t *testing.T) {
	a := modularity.Analyze(domain.NewFileRecord("/proj/shop/views.py", "", nil))
	assert.Equal(t, domain.KindView, a.FileKind)
	assert.Zero(t, a.LineCount)
	assert.Zero(t, a.ClassCount)
	assert.NotNil(t, a.BusinessDomains)
	assert.NotNil(t, a.ComplexityIndicators)
}

func TestAnalyze_CRLF(t *testing.T) {
	rec := domain.NewFileRecord("/proj/shop/models.py", "", []byte("class Brand:\r\n    pass\r\ndef f():\r\n    pass\r\n"))
	a := modularity.Analyze(rec)
	assert.Equal(t, 4, a.LineCount)
	assert.Equal(t, 1, a.ClassCount)
	assert.Equal(t, 1, a.FunctionCount)
}

func TestAnalyze_DomainCountBoundedByClassCount(t *testing.T) {
	a := modularity.Analyze(record(domain.KindModel,
		"class BrandCategory:",
		"class SKUPriceImport:",
	))
	assert.LessOrEqual(t, a.DomainCount(), a.ClassCount)
}
