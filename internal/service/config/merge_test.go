package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/closer-platform/availability-service/internal/domain"
	"github.com/closer-platform/availability-service/internal/schema"
)

func findCategory(t *testing.T, slug string) domain.ConfigDescription {
	t.Helper()
	for _, desc := range schema.Descriptions() {
		if desc.Slug == slug {
			return desc
		}
	}
	t.Fatalf("category %s missing from schema", slug)
	return domain.ConfigDescription{}
}

func TestMergeCategory_AbsentCategoryGetsDefaults(t *testing.T) {
	desc := findCategory(t, domain.SlugBooking)

	resolved := MergeCategory(desc, nil)

	// Все ключи схемы присутствуют
	for _, field := range desc.Fields {
		_, ok := resolved.Value[field.Name]
		assert.True(t, ok, "key %s must be present", field.Name)
	}

	assert.Equal(t, float64(90), resolved.Value["maxBookingHorizon"])
	assert.Equal(t, float64(365), resolved.Value["memberMaxBookingHorizon"])
	assert.Equal(t, "EUR", resolved.Value["utilityFiatCur"])
}

func TestMergeCategory_AbsentCategoryEnabledForcedFalse(t *testing.T) {
	// Схема объявляет enabled=true, но полностью отсутствующая категория
	// появляется у арендатора выключенной
	desc := findCategory(t, domain.SlugBooking)

	resolved := MergeCategory(desc, nil)

	assert.Equal(t, false, resolved.Value["enabled"])
}

func TestMergeCategory_StoredEnabledPreserved(t *testing.T) {
	desc := findCategory(t, domain.SlugBooking)
	doc := &domain.ConfigDocument{
		Slug:  domain.SlugBooking,
		Value: map[string]interface{}{"enabled": true},
	}

	resolved := MergeCategory(desc, doc)

	assert.Equal(t, true, resolved.Value["enabled"])
	// Остальные ключи добиты дефолтами
	assert.Equal(t, float64(14), resolved.Value["maxDuration"])
}

func TestMergeCategory_StoredValuesWin(t *testing.T) {
	desc := findCategory(t, domain.SlugBooking)
	doc := &domain.ConfigDocument{
		Slug: domain.SlugBooking,
		Value: map[string]interface{}{
			"maxBookingHorizon": float64(45),
			"utilityFiatCur":    "USD",
		},
	}

	resolved := MergeCategory(desc, doc)

	assert.Equal(t, float64(45), resolved.Value["maxBookingHorizon"])
	assert.Equal(t, "USD", resolved.Value["utilityFiatCur"])
	assert.Equal(t, float64(365), resolved.Value["memberMaxBookingHorizon"])
}

func TestMergeCategory_UnknownStoredKeysDropped(t *testing.T) {
	desc := findCategory(t, "general")
	doc := &domain.ConfigDocument{
		Slug: "general",
		Value: map[string]interface{}{
			"platformName": "Closer",
			"legacyField":  "stale",
		},
	}

	resolved := MergeCategory(desc, doc)

	assert.Equal(t, "Closer", resolved.Value["platformName"])
	_, ok := resolved.Value["legacyField"]
	assert.False(t, ok, "keys without a schema analog must not be rendered")
}

func TestMergeCategory_SynthesizedNestedElement(t *testing.T) {
	// У discounts нет литеральных дефолтов - элемент-шаблон синтезируется
	// из объявленных типов: text -> "", number -> 0, boolean -> false
	desc := findCategory(t, domain.SlugBooking)

	resolved := MergeCategory(desc, nil)

	discounts, ok := resolved.Value["discounts"].([]interface{})
	require.True(t, ok)
	require.Len(t, discounts, 1)

	elem, ok := discounts[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "", elem["name"])
	assert.Equal(t, float64(0), elem["durationThreshold"])
	assert.Equal(t, float64(0), elem["percent"])
	assert.Equal(t, false, elem["membersOnly"])
}

func TestMergeCategory_EmailsSeededWithFullDefaults(t *testing.T) {
	desc := findCategory(t, domain.SlugEmails)

	resolved := MergeCategory(desc, nil)

	templates, ok := resolved.Value["templates"].([]interface{})
	require.True(t, ok)
	assert.Len(t, templates, 5)
}

func TestMergeCategory_EmailsAdditiveMigration(t *testing.T) {
	// У арендатора сохранён один кастомизированный шаблон; новые дефолтные
	// шаблоны дописываются, кастомизация не перетирается
	desc := findCategory(t, domain.SlugEmails)
	doc := &domain.ConfigDocument{
		Slug: domain.SlugEmails,
		Value: map[string]interface{}{
			"templates": []interface{}{
				map[string]interface{}{
					"name":    "booking-request",
					"subject": "Custom subject",
					"body":    "Custom body",
				},
			},
		},
	}

	resolved := MergeCategory(desc, doc)

	templates, ok := resolved.Value["templates"].([]interface{})
	require.True(t, ok)
	require.Len(t, templates, 5)

	first, ok := templates[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "booking-request", first["name"])
	assert.Equal(t, "Custom subject", first["subject"])

	// Шаблон не дублируется
	count := 0
	for _, tpl := range templates {
		m := tpl.(map[string]interface{})
		if m["name"] == "booking-request" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMergeCategory_ElementKeysCompleted(t *testing.T) {
	// Элемент, записанный старой версией схемы без поля subject,
	// добивается до полного набора ключей
	desc := findCategory(t, domain.SlugEmails)
	doc := &domain.ConfigDocument{
		Slug: domain.SlugEmails,
		Value: map[string]interface{}{
			"templates": []interface{}{
				map[string]interface{}{
					"name": "booking-confirmation",
					"body": "Old body",
				},
			},
		},
	}

	resolved := MergeCategory(desc, doc)

	templates := resolved.Value["templates"].([]interface{})
	first := templates[0].(map[string]interface{})

	assert.Equal(t, "booking-confirmation", first["name"])
	assert.Equal(t, "Old body", first["body"])
	_, hasSubject := first["subject"]
	assert.True(t, hasSubject, "missing keys must be backfilled from the default element")
}

func TestMergeCategory_PrimitiveArrayPassThrough(t *testing.T) {
	desc := findCategory(t, "general")
	doc := &domain.ConfigDocument{
		Slug: "general",
		Value: map[string]interface{}{
			"amenities": []interface{}{"wifi", "sauna"},
		},
	}

	resolved := MergeCategory(desc, doc)

	amenities, ok := resolved.Value["amenities"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"wifi", "sauna"}, amenities)
}

func TestMerge_OneDocumentPerSchemaCategory(t *testing.T) {
	descs := schema.Descriptions()
	stored := []*domain.ConfigDocument{
		{Slug: domain.SlugBooking, Value: map[string]interface{}{"enabled": true}},
	}

	resolved := Merge(descs, stored)

	require.Len(t, resolved, len(descs))
	for i, desc := range descs {
		assert.Equal(t, desc.Slug, resolved[i].Slug)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	desc := findCategory(t, domain.SlugEmails)
	storedTemplates := []interface{}{
		map[string]interface{}{"name": "booking-request", "subject": "s", "body": "b"},
	}
	doc := &domain.ConfigDocument{
		Slug:  domain.SlugEmails,
		Value: map[string]interface{}{"templates": storedTemplates},
	}

	_ = MergeCategory(desc, doc)

	assert.Len(t, storedTemplates, 1, "stored array must not grow in place")
}
