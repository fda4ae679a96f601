package usecase

import (
	"context"
	"sync"
	"time"

	"learningapp/internal/domain"
	"learningapp/internal/infrastructure/repository"
	"learningapp/internal/logger"
)

const minPasswordLen = 6

// AuthUseCase — мок-логин и мок-регистрация. Никакого реального бэкенда:
// фиксированный список учеток плюс искусственная задержка, имитирующая
// удаленный вызов.
type AuthUseCase struct {
	credRepo      *repository.CredentialRepository
	loginDelay    time.Duration
	registerDelay time.Duration
	log           *logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{} // экраны с незавершенным сабмитом
}

func NewAuthUseCase(cr *repository.CredentialRepository, loginDelay, registerDelay time.Duration, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		credRepo:      cr,
		loginDelay:    loginDelay,
		registerDelay: registerDelay,
		log:           log,
		inFlight:      make(map[string]struct{}),
	}
}

// Login проверяет пару email/password по мок-списку.
// Пустые поля отсекаются сразу, до задержки — как в приложении.
// Возвращает display name пользователя.
func (uc *AuthUseCase) Login(ctx context.Context, screenID, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrMissingFields
	}

	release, err := uc.acquire(screenID)
	if err != nil {
		return "", err
	}
	defer release()

	if err := uc.simulateRemoteCall(ctx, uc.loginDelay); err != nil {
		return "", err
	}

	cred, err := uc.credRepo.FindByLogin(ctx, email, password)
	if err != nil {
		uc.log.Info("login failed", "email", email)
		return "", err
	}

	uc.log.Info("login ok", "email", email)
	return cred.DisplayName, nil
}

// Register валидирует форму в строгом порядке: пустые поля -> несовпадение
// паролей -> короткий пароль. От порядка зависит, какое сообщение увидит
// пользователь. Список учеток не трогаем, аккаунт нигде не сохраняется —
// после локальной валидации регистрация всегда "успешна".
func (uc *AuthUseCase) Register(ctx context.Context, screenID string, form domain.RegistrationForm) error {
	if form.FullName == "" || form.Email == "" || form.Password == "" || form.ConfirmPassword == "" {
		return domain.ErrMissingFields
	}
	if form.Password != form.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	if len(form.Password) < minPasswordLen {
		return domain.ErrPasswordTooShort
	}

	release, err := uc.acquire(screenID)
	if err != nil {
		return err
	}
	defer release()

	if err := uc.simulateRemoteCall(ctx, uc.registerDelay); err != nil {
		return err
	}

	uc.log.Info("registration ok", "email", form.Email)
	return nil
}

// acquire ставит флаг "запрос в полете" для экрана. Флаг снимается
// безусловно через release на любом исходе. Пустой screenID — без защиты.
func (uc *AuthUseCase) acquire(screenID string) (func(), error) {
	if screenID == "" {
		return func() {}, nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, busy := uc.inFlight[screenID]; busy {
		return nil, domain.ErrSubmitInFlight
	}
	uc.inFlight[screenID] = struct{}{}

	return func() {
		uc.mu.Lock()
		delete(uc.inFlight, screenID)
		uc.mu.Unlock()
	}, nil
}

// simulateRemoteCall ждет одноразовый таймер, не блокируя других.
// Если вызвавший экран пропал (ctx отменен) — выходим сразу.
func (uc *AuthUseCase) simulateRemoteCall(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
