package cache

import "fmt"

// Key идентифицирует производный график района.
type Key struct {
	Family   string // семейство метрик, например "salesGraph"
	Name     string // имя метрики, например "dayGraph"
	District int64
	Year     int
}

// Base возвращает ключ вида "<family>:<name>:<district>".
func (k Key) Base() string {
	return fmt.Sprintf("%s:%s:%d", k.Family, k.Name, k.District)
}

// StoreKey возвращает полный ключ хранилища с версией схемы и отчетным годом.
// Смена формы графика требует увеличения версии, иначе клиенты получат старые данные.
func (k Key) StoreKey(version string) string {
	return fmt.Sprintf("v%s:%s:%d", version, k.Base(), k.Year)
}
