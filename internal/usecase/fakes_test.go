package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"meem-backend/internal/data/entity"
	"meem-backend/internal/data/repository"
	"meem-backend/pkg/cache"
	"meem-backend/pkg/utils"
)

// In-memory fakes standing in for Postgres, MinIO and SMTP.

type fakeUserRepo struct {
	users     map[string]*entity.User // keyed by email
	createErr error
	updateErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.Email]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	clone := *user
	f.users[user.Email] = &clone
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.users[user.Email]; !ok {
		return errors.New("user not found")
	}
	clone := *user
	f.users[user.Email] = &clone
	return nil
}

type fakeOTPRepo struct {
	slots     map[string]*entity.OTP // keyed by email, single slot
	upsertErr error
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{slots: make(map[string]*entity.OTP)}
}

func (f *fakeOTPRepo) Upsert(ctx context.Context, otp *entity.OTP) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	clone := *otp
	f.slots[otp.Email] = &clone
	return nil
}

func (f *fakeOTPRepo) FindByEmail(ctx context.Context, email string) (*entity.OTP, error) {
	otp, ok := f.slots[email]
	if !ok {
		return nil, nil
	}
	clone := *otp
	return &clone, nil
}

func (f *fakeOTPRepo) DeleteByEmail(ctx context.Context, email string) error {
	if _, ok := f.slots[email]; !ok {
		return errors.New("no OTP found for " + email)
	}
	delete(f.slots, email)
	return nil
}

type fakeImageRepo struct {
	images    []*entity.Image
	createErr error
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{}
}

func (f *fakeImageRepo) Create(ctx context.Context, image *entity.Image) error {
	if f.createErr != nil {
		return f.createErr
	}
	clone := *image
	f.images = append(f.images, &clone)
	return nil
}

func (f *fakeImageRepo) FindPage(ctx context.Context, limit, offset int) ([]*entity.Image, error) {
	sorted := make([]*entity.Image, len(f.images))
	copy(sorted, f.images)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UploadedAt.After(sorted[j].UploadedAt)
	})

	if offset >= len(sorted) {
		return nil, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

func (f *fakeImageRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.images)), nil
}

// FindGroupedPage mirrors the SQL aggregation: group by normalized type,
// newest first inside a group, group names ascending, paginate over groups.
func (f *fakeImageRepo) FindGroupedPage(ctx context.Context, limit, offset int) ([]*entity.ImageGroup, error) {
	sorted := make([]*entity.Image, len(f.images))
	copy(sorted, f.images)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UploadedAt.After(sorted[j].UploadedAt)
	})

	grouped := make(map[string][]entity.ImageGroupEntry)
	for _, image := range sorted {
		key := entity.NormalizeImageType(image.ImageType)
		grouped[key] = append(grouped[key], entity.ImageGroupEntry{
			Tag: image.ImageTag,
			URL: image.URL,
		})
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	if offset >= len(names) {
		return nil, nil
	}
	end := offset + limit
	if end > len(names) {
		end = len(names)
	}

	var groups []*entity.ImageGroup
	for _, name := range names[offset:end] {
		groups = append(groups, &entity.ImageGroup{Type: name, Images: grouped[name]})
	}
	return groups, nil
}

func (f *fakeImageRepo) CountGroups(ctx context.Context) (int64, error) {
	seen := make(map[string]struct{})
	for _, image := range f.images {
		seen[entity.NormalizeImageType(image.ImageType)] = struct{}{}
	}
	return int64(len(seen)), nil
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent    []sentEmail
	sendErr error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}

func (f *fakeMailer) SendHTML(to, subject, htmlBody string) error {
	return f.Send(to, subject, htmlBody)
}

type storedObject struct {
	Key         string
	ContentType string
	Data        []byte
}

type fakeUploader struct {
	objects []storedObject
	putErr  error
	// fail only the nth call (1-based) when failOn > 0
	failOn int
	calls  int
}

func (f *fakeUploader) Put(ctx context.Context, key, contentType string, data []byte) error {
	f.calls++
	if f.putErr != nil && (f.failOn == 0 || f.calls == f.failOn) {
		return f.putErr
	}
	f.objects = append(f.objects, storedObject{Key: key, ContentType: contentType, Data: data})
	return nil
}

func testConfig() *utils.Config {
	return &utils.Config{
		Storage: utils.StorageConfig{
			CDNBaseURL: "https://cdn.test/",
			Bucket:     "meem-assets",
		},
		OTP: utils.OTPConfig{ExpiryMinutes: 3},
	}
}

type testDeps struct {
	users  *fakeUserRepo
	otps   *fakeOTPRepo
	images *fakeImageRepo
	mail   *fakeMailer
	store  *fakeUploader
	cache  *cache.Store
	repo   *repository.Repository
	config *utils.Config
}

func seedUser(t *testing.T, deps *testDeps, email, username string, passwordHash *string) *entity.User {
	t.Helper()
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	require.NoError(t, deps.users.Create(context.Background(), user))
	return user
}

func newTestDeps() *testDeps {
	users := newFakeUserRepo()
	otps := newFakeOTPRepo()
	images := newFakeImageRepo()

	return &testDeps{
		users:  users,
		otps:   otps,
		images: images,
		mail:   &fakeMailer{},
		store:  &fakeUploader{},
		cache:  cache.New(),
		repo: &repository.Repository{
			User:  users,
			OTP:   otps,
			Image: images,
		},
		config: testConfig(),
	}
}
