package services

import (
	"errors"
	"sync"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"

	"gorm.io/gorm"
)

// fakeProfileRepo - профиль в памяти; каждый UpdateColumns записывается
type fakeProfileRepo struct {
	mu        sync.Mutex
	profile   *models.Profile
	updates   []map[string]any
	updateErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profile: DefaultProfile(1)}
}

func (r *fakeProfileRepo) FindByID(_ *gorm.DB, id uint) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.profile == nil || r.profile.ID != id {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *r.profile
	return &copied, nil
}

func (r *fakeProfileRepo) EnsureExists(_ *gorm.DB, defaults *models.Profile) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.profile != nil {
		return false, nil
	}
	r.profile = defaults
	return true, nil
}

func (r *fakeProfileRepo) UpdateColumns(_ *gorm.DB, id uint, columns map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, columns)
	if r.updateErr != nil {
		return r.updateErr
	}
	if r.profile == nil || r.profile.ID != id {
		return repositories.ErrProfileNotFound
	}

	if v, ok := columns["name"].(string); ok {
		r.profile.Name = v
	}
	if v, ok := columns["avatar"].(string); ok {
		r.profile.Avatar = &v
	}
	if v, ok := columns["avatar_source"].(string); ok {
		r.profile.AvatarSource = &v
	}
	return nil
}

var errDBDown = errors.New("connection refused")

// fakeUserRepo - пользователи в памяти по email
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if _, ok := r.users[user.Email]; ok {
		return repositories.ErrUserAlreadyExists
	}
	user.ID = uint(len(r.users) + 1)
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ *gorm.DB, id uint, passwordHash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

// fakeSkillRepo - навыки в памяти; пустой список отдается как nil, как это делает gorm без строк
type fakeSkillRepo struct {
	skills map[uint]*models.Skill
	nextID uint
	err    error
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[uint]*models.Skill{}, nextID: 1}
}

func (r *fakeSkillRepo) List(_ *gorm.DB) ([]models.Skill, error) {
	if r.err != nil {
		return nil, r.err
	}
	var skills []models.Skill
	for _, s := range r.skills {
		skills = append(skills, *s)
	}
	return skills, nil
}

func (r *fakeSkillRepo) FindByID(_ *gorm.DB, id uint) (*models.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return nil, repositories.ErrSkillNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSkillRepo) Create(_ *gorm.DB, skill *models.Skill) error {
	if r.err != nil {
		return r.err
	}
	skill.ID = r.nextID
	r.nextID++
	copied := *skill
	r.skills[skill.ID] = &copied
	return nil
}

func (r *fakeSkillRepo) Update(_ *gorm.DB, skill *models.Skill) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.skills[skill.ID]; !ok {
		return repositories.ErrSkillNotFound
	}
	copied := *skill
	r.skills[skill.ID] = &copied
	return nil
}

func (r *fakeSkillRepo) Delete(_ *gorm.DB, id uint) error {
	if _, ok := r.skills[id]; !ok {
		return repositories.ErrSkillNotFound
	}
	delete(r.skills, id)
	return nil
}

func (r *fakeSkillRepo) Count(_ *gorm.DB) (int64, error) {
	return int64(len(r.skills)), nil
}

// fakeProjectRepo - проекты в памяти
type fakeProjectRepo struct {
	projects map[uint]*models.Project
	nextID   uint
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[uint]*models.Project{}, nextID: 1}
}

func (r *fakeProjectRepo) List(_ *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	for _, p := range r.projects {
		projects = append(projects, *p)
	}
	return projects, nil
}

func (r *fakeProjectRepo) FindByID(_ *gorm.DB, id uint) (*models.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProjectRepo) Create(_ *gorm.DB, project *models.Project) error {
	project.ID = r.nextID
	r.nextID++
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) Update(_ *gorm.DB, project *models.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return repositories.ErrProjectNotFound
	}
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) Delete(_ *gorm.DB, id uint) error {
	if _, ok := r.projects[id]; !ok {
		return repositories.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeProjectRepo) Count(_ *gorm.DB) (int64, error) {
	return int64(len(r.projects)), nil
}

// fakeSettingsRepo - одна строка настроек или ее отсутствие
type fakeSettingsRepo struct {
	settings *models.SiteSettings
	saves    int
	getErr   error
	saveErr  error
}

func (r *fakeSettingsRepo) Get(_ *gorm.DB) (*models.SiteSettings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.settings == nil {
		return nil, repositories.ErrSettingsNotFound
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Save(_ *gorm.DB, settings *models.SiteSettings) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *settings
	r.settings = &copied
	return nil
}
