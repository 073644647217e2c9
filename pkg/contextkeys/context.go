package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ для *gorm.DB (пул или транзакция) в gin.Context
	DBContextKey = contextKey("db")

	// UserIDKey - ключ для ID аутентифицированного пользователя (uint)
	UserIDKey = contextKey("userID")
)
