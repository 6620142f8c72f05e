package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingPhoto UserState = "awaiting_photo" // Ожидание фото лица
	StateProcessing    UserState = "processing"     // Идёт расчёт
)

// User представляет пользователя бота
type User struct {
	ID       int64     // Telegram User ID
	ChatID   int64     // Telegram Chat ID
	State    UserState // Текущее состояние пользователя
	Settings Options   // Параметры расчёта FWHR
}

// NewUser создаёт пользователя в главном меню с параметрами по умолчанию
func NewUser(userID, chatID int64, settings Options) *User {
	return &User{
		ID:       userID,
		ChatID:   chatID,
		State:    StateMainMenu,
		Settings: settings,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// SetMethod меняет способ выбора линий
func (u *User) SetMethod(m Method) {
	u.Settings.Method = m
}

// SetTop меняет опорную точку верхней линии
func (u *User) SetTop(t Top) {
	u.Settings.Top = t
}
