package service

const (
	MonthsPerYear = 12

	// Prefijo de las claves de caché para comandos ya analizados
	inputCacheKeyPrefix = "mortgage:input:"

	DefaultHistoryLimit = 20
)
