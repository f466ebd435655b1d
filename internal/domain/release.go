package domain

// Release — один релиз продукта: пара (версия, имя).
//
// Version — строка вида "3.7" или "3.7.1" (точечно-разделённые
// неотрицательные числа). Name — человекочитаемое имя релиза.
// Значение неизменяемо: создаётся один раз и передаётся по значению.
type Release struct {
	// Version — версия релиза, например "4.2".
	Version string

	// Name — имя релиза, например "Osprey".
	Name string
}

// String возвращает релиз в формате "name/version".
// Этот же формат используется как имя release-ветки в репозитории.
func (r Release) String() string {
	return r.Name + "/" + r.Version
}

// Catalog — все известные релизы, ключ — версия, значение — имя.
//
// Уникальность версий обеспечивается самой map; уникальность имён —
// загрузчиком каталога (см. internal/catalog).
type Catalog map[string]string

// Has проверяет, есть ли версия в каталоге.
func (c Catalog) Has(version string) bool {
	_, ok := c[version]
	return ok
}
