package suggest

// User-facing texts. The bot talks to its audience in Russian.
const (
	msgSubmissionReceived = "Ваш пост отправлен администратору."
	msgNoModerator        = "⚠️ Бот ещё не настроен: некому рассмотреть ваш пост. Попробуйте позже."
	msgIngestFailed       = "⚠️ Не удалось сохранить ваш пост, попробуйте позже."
	msgInternalError      = "⚠️ Внутренняя ошибка, ваш пост сохранён, но пока не передан модератору."
	msgDownloadFailed     = "⚠️ Не удалось загрузить вложение, попробуйте ещё раз."
	msgPublished          = "Ваш пост опубликован!"
	msgDeclined           = "Ваш пост отклонён."
	msgBlocked            = "Вы заблокированы и исключены из канала."

	ackPublished     = "✅ Пост успешно отправлен"
	ackPublishFailed = "⚠️ Не удалось опубликовать пост: %v"
	ackDeclined      = "Пост отклонён"
	ackBanned        = "🔨 Пользователь заблокирован"
	ackNotFound      = "Ошибка: пост не найден"
	ackUnauthorized  = "Unauthorized"
	ackUnknownAction = "Неизвестное действие"
	ackInternalError = "⚠️ Внутренняя ошибка, попробуйте позже"

	ackNoRights     = "❌ У вас нет прав."
	ackAlreadyInit  = "Бот уже инициализирован."
	ackNotModerator = "Пользователь не является модератором."
	ackNoModerators = "Модераторов нет."
)
