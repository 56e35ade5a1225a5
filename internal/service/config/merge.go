package config

import "github.com/closer-platform/availability-service/internal/domain"

// Merge разрешает схему против сохранённых документов: на каждую категорию
// схемы возвращается полностью заполненный документ с добитыми дефолтами.
//
// Категории и наборы полей эволюционируют со временем, а сохранённые документы
// могут быть записаны старой версией схемы - поэтому вместо миграций БД
// полный конфиг пересобирается на каждом чтении. Сохранённые ключи без
// аналога в схеме в результат не попадают.
//
// Чистая функция: не мутирует ни схему, ни сохранённые документы.
func Merge(schema []domain.ConfigDescription, stored []*domain.ConfigDocument) []*domain.ConfigDocument {
	bySlug := make(map[string]*domain.ConfigDocument, len(stored))
	for _, doc := range stored {
		if doc != nil {
			bySlug[doc.Slug] = doc
		}
	}

	resolved := make([]*domain.ConfigDocument, 0, len(schema))
	for _, desc := range schema {
		resolved = append(resolved, MergeCategory(desc, bySlug[desc.Slug]))
	}

	return resolved
}

// MergeCategory разрешает одну категорию схемы против её сохранённого
// документа (nil, если категория ещё ни разу не сохранялась)
func MergeCategory(desc domain.ConfigDescription, doc *domain.ConfigDocument) *domain.ConfigDocument {
	out := &domain.ConfigDocument{
		Slug:  desc.Slug,
		Value: make(map[string]interface{}, len(desc.Fields)),
	}
	if doc != nil {
		out.CreatedAt = doc.CreatedAt
		out.UpdatedAt = doc.UpdatedAt
	}

	for _, field := range desc.Fields {
		if field.Type == domain.FieldTypeArray {
			out.Value[field.Name] = mergeArrayField(desc.Slug, field, doc)
			continue
		}

		out.Value[field.Name] = mergeScalarField(field, doc)
	}

	return out
}

// mergeScalarField: сохранённое значение, иначе дефолт схемы.
// Исключение: поле enabled полностью отсутствующей категории принудительно
// false - новые категории появляются у арендаторов выключенными,
// какой бы дефолт ни объявляла схема.
func mergeScalarField(field domain.FieldDescription, doc *domain.ConfigDocument) interface{} {
	if doc == nil && field.Name == domain.FieldNameEnabled {
		return false
	}

	if doc != nil {
		if v, ok := doc.Value[field.Name]; ok {
			return v
		}
	}

	return field.Default
}

func mergeArrayField(slug string, field domain.FieldDescription, doc *domain.ConfigDocument) interface{} {
	storedArr, hasStored := storedArray(doc, field.Name)

	// Массивы примитивов проходят насквозь без трансформации
	if !field.Element.IsStruct() {
		if hasStored {
			return storedArr
		}
		if defaults, ok := field.Default.([]interface{}); ok {
			return cloneArray(defaults)
		}
		return []interface{}{}
	}

	defElem := defaultNestedElement(field)
	if defElem == nil {
		// Схема не в ожидаемой форме - пропускаем дополнение
		if hasStored {
			return storedArr
		}
		return []interface{}{}
	}

	if !hasStored {
		return seedArray(slug, field, defElem)
	}

	merged := cloneArray(storedArr)

	// Только для emails: дефолтные шаблоны, отсутствующие в сохранённом
	// массиве, дописываются в конец (аддитивная миграция по name).
	// Кастомизированные шаблоны арендатора при этом не перетираются.
	if slug == domain.SlugEmails {
		merged = appendMissingDefaults(merged, field)
	}

	// Каждый элемент добивается до полного набора ключей схемы
	for i, elem := range merged {
		merged[i] = mergeElement(defElem, elem)
	}

	return merged
}

// defaultNestedElement определяет элемент-шаблон для массива структур:
// первый элемент дефолтного массива схемы, а если литеральных дефолтов нет -
// элемент синтезируется из объявленных типов полей
func defaultNestedElement(field domain.FieldDescription) map[string]interface{} {
	if defaults, ok := field.Default.([]interface{}); ok && len(defaults) > 0 {
		if first, ok := defaults[0].(map[string]interface{}); ok {
			return cloneElement(first)
		}
	}

	if !field.Element.IsStruct() {
		return nil
	}

	elem := make(map[string]interface{}, len(field.Element.Fields))
	for _, f := range field.Element.Fields {
		elem[f.Name] = zeroValue(f.Type)
	}
	return elem
}

// zeroValue синтезирует дефолт по объявленному типу поля
func zeroValue(t domain.FieldType) interface{} {
	switch t {
	case domain.FieldTypeNumber:
		return float64(0)
	case domain.FieldTypeBoolean:
		return false
	default:
		return ""
	}
}

// seedArray заполняет отсутствующий в хранилище массив:
// для emails - полным дефолтным набором шаблонов,
// для остальных категорий - одной копией элемента-шаблона
func seedArray(slug string, field domain.FieldDescription, defElem map[string]interface{}) []interface{} {
	if slug == domain.SlugEmails {
		if defaults, ok := field.Default.([]interface{}); ok {
			return cloneArray(defaults)
		}
	}
	return []interface{}{cloneElement(defElem)}
}

// appendMissingDefaults дописывает дефолтные элементы, чьё name
// отсутствует среди сохранённых
func appendMissingDefaults(stored []interface{}, field domain.FieldDescription) []interface{} {
	defaults, ok := field.Default.([]interface{})
	if !ok {
		return stored
	}

	existing := make(map[string]struct{}, len(stored))
	for _, elem := range stored {
		if m, ok := elem.(map[string]interface{}); ok {
			if name, ok := m["name"].(string); ok {
				existing[name] = struct{}{}
			}
		}
	}

	for _, def := range defaults {
		m, ok := def.(map[string]interface{})
		if !ok {
			continue
		}
		name, ok := m["name"].(string)
		if !ok {
			continue
		}
		if _, found := existing[name]; !found {
			stored = append(stored, cloneElement(m))
		}
	}

	return stored
}

// mergeElement собирает элемент по ключам элемента-шаблона:
// значение из сохранённого элемента, если ключ в нём есть, иначе дефолт.
// Гарантирует полный актуальный набор ключей даже для элементов,
// записанных старой версией схемы.
func mergeElement(defElem map[string]interface{}, stored interface{}) map[string]interface{} {
	out := cloneElement(defElem)

	storedMap, ok := stored.(map[string]interface{})
	if !ok {
		return out
	}

	for key := range out {
		if v, exists := storedMap[key]; exists {
			out[key] = v
		}
	}

	return out
}

func storedArray(doc *domain.ConfigDocument, name string) ([]interface{}, bool) {
	if doc == nil {
		return nil, false
	}
	arr, ok := doc.Value[name].([]interface{})
	return arr, ok
}

func cloneArray(arr []interface{}) []interface{} {
	out := make([]interface{}, len(arr))
	copy(out, arr)
	return out
}

func cloneElement(elem map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(elem))
	for k, v := range elem {
		out[k] = v
	}
	return out
}
