package services

import (
	"context"
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/yoockh/portfolio-admin/internal/models"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

// In-memory stand-ins for the mongo repositories, the uploader, and the
// cache. Behavior mirrors the real implementations closely enough for the
// service-level contract tests.

type fakeUploader struct {
	uploads   []string // object names in upload order
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeUploader) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if r != nil {
		_, _ = io.Copy(io.Discard, r)
	}
	f.uploads = append(f.uploads, objectName)
	return "https://storage.googleapis.com/test-bucket/" + objectName, nil
}

func (f *fakeUploader) Delete(_ context.Context, objectName string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, objectName)
	return nil
}

type fakeCache struct {
	data map[string][]byte
	dels []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		f.dels = append(f.dels, k)
		delete(f.data, k)
	}
	return nil
}

type fakeContactRepo struct {
	doc *models.Contact
	err error
}

func (f *fakeContactRepo) Get(_ context.Context) (*models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.doc == nil {
		return nil, utils.ErrNotFound
	}
	doc := *f.doc
	return &doc, nil
}

func (f *fakeContactRepo) Insert(_ context.Context, doc *models.Contact) error {
	if f.err != nil {
		return f.err
	}
	copied := *doc
	f.doc = &copied
	return nil
}

func (f *fakeContactRepo) Replace(_ context.Context, doc *models.Contact) error {
	if f.doc == nil {
		return utils.ErrNotFound
	}
	copied := *doc
	f.doc = &copied
	return nil
}

func (f *fakeContactRepo) Delete(_ context.Context) error {
	if f.doc == nil {
		return utils.ErrNotFound
	}
	f.doc = nil
	return nil
}

func (f *fakeContactRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.doc == nil {
		return 0, nil
	}
	return 1, nil
}

type fakeUserRepo struct {
	docs []models.User
	err  error
}

func (f *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.User{}, f.docs...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			doc := f.docs[i]
			return &doc, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeUserRepo) NextID(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	max := 0
	for _, d := range f.docs {
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, doc *models.User) error {
	if f.err != nil {
		return f.err
	}
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeUserRepo) Replace(_ context.Context, doc *models.User) error {
	for i := range f.docs {
		if f.docs[i].ID == doc.ID {
			f.docs[i] = *doc
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeUserRepo) Delete(_ context.Context, id int) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.docs)), nil
}

type fakeWorkExperienceRepo struct {
	docs []models.WorkExperience
	err  error
}

func (f *fakeWorkExperienceRepo) List(_ context.Context) ([]models.WorkExperience, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.WorkExperience{}, f.docs...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeWorkExperienceRepo) GetByID(_ context.Context, id int) (*models.WorkExperience, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			doc := f.docs[i]
			return &doc, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeWorkExperienceRepo) NextID(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	max := 0
	for _, d := range f.docs {
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1, nil
}

func (f *fakeWorkExperienceRepo) Insert(_ context.Context, doc *models.WorkExperience) error {
	if f.err != nil {
		return f.err
	}
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeWorkExperienceRepo) Replace(_ context.Context, doc *models.WorkExperience) error {
	for i := range f.docs {
		if f.docs[i].ID == doc.ID {
			f.docs[i] = *doc
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeWorkExperienceRepo) Delete(_ context.Context, id int) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeWorkExperienceRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.docs)), nil
}

type fakeEducationRepo struct {
	docs []models.Education
	err  error
}

func (f *fakeEducationRepo) List(_ context.Context) ([]models.Education, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.Education{}, f.docs...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEducationRepo) GetByID(_ context.Context, id int) (*models.Education, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			doc := f.docs[i]
			return &doc, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeEducationRepo) NextID(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	max := 0
	for _, d := range f.docs {
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1, nil
}

func (f *fakeEducationRepo) Insert(_ context.Context, doc *models.Education) error {
	if f.err != nil {
		return f.err
	}
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeEducationRepo) Replace(_ context.Context, doc *models.Education) error {
	for i := range f.docs {
		if f.docs[i].ID == doc.ID {
			f.docs[i] = *doc
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeEducationRepo) Delete(_ context.Context, id int) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeEducationRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.docs)), nil
}

type fakeCertificationRepo struct {
	docs []models.Certification
	err  error
}

func (f *fakeCertificationRepo) List(_ context.Context) ([]models.Certification, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.Certification{}, f.docs...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCertificationRepo) GetByID(_ context.Context, id int) (*models.Certification, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			doc := f.docs[i]
			return &doc, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeCertificationRepo) NextID(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	max := 0
	for _, d := range f.docs {
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1, nil
}

func (f *fakeCertificationRepo) Insert(_ context.Context, doc *models.Certification) error {
	if f.err != nil {
		return f.err
	}
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeCertificationRepo) Replace(_ context.Context, doc *models.Certification) error {
	for i := range f.docs {
		if f.docs[i].ID == doc.ID {
			f.docs[i] = *doc
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeCertificationRepo) Delete(_ context.Context, id int) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeCertificationRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.docs)), nil
}

type fakeTechnologyRepo struct {
	docs []models.Technology
	err  error
}

func (f *fakeTechnologyRepo) List(_ context.Context) ([]models.Technology, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.Technology{}, f.docs...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTechnologyRepo) GetByID(_ context.Context, id int) (*models.Technology, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			doc := f.docs[i]
			return &doc, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeTechnologyRepo) GetByName(_ context.Context, name string) (*models.Technology, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].Name == name {
			doc := f.docs[i]
			return &doc, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeTechnologyRepo) NextID(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	max := 0
	for _, d := range f.docs {
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1, nil
}

func (f *fakeTechnologyRepo) Insert(_ context.Context, doc *models.Technology) error {
	if f.err != nil {
		return f.err
	}
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeTechnologyRepo) Replace(_ context.Context, doc *models.Technology) error {
	for i := range f.docs {
		if f.docs[i].ID == doc.ID {
			f.docs[i] = *doc
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeTechnologyRepo) Delete(_ context.Context, id int) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeTechnologyRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.docs)), nil
}

type fakeTestimonialRepo struct {
	docs []models.Testimonial
	err  error
}

func (f *fakeTestimonialRepo) List(_ context.Context) ([]models.Testimonial, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.Testimonial{}, f.docs...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTestimonialRepo) GetByID(_ context.Context, id int) (*models.Testimonial, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			doc := f.docs[i]
			return &doc, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeTestimonialRepo) NextID(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	max := 0
	for _, d := range f.docs {
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1, nil
}

func (f *fakeTestimonialRepo) Insert(_ context.Context, doc *models.Testimonial) error {
	if f.err != nil {
		return f.err
	}
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeTestimonialRepo) Replace(_ context.Context, doc *models.Testimonial) error {
	for i := range f.docs {
		if f.docs[i].ID == doc.ID {
			f.docs[i] = *doc
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeTestimonialRepo) Delete(_ context.Context, id int) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeTestimonialRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.docs)), nil
}

type fakeProjectRepo struct {
	docs []models.Project
	err  error
}

func (f *fakeProjectRepo) List(_ context.Context) ([]models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.Project{}, f.docs...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id int) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			doc := f.docs[i]
			return &doc, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeProjectRepo) NextID(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	max := 0
	for _, d := range f.docs {
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1, nil
}

func (f *fakeProjectRepo) Insert(_ context.Context, doc *models.Project) error {
	if f.err != nil {
		return f.err
	}
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeProjectRepo) Replace(_ context.Context, doc *models.Project) error {
	for i := range f.docs {
		if f.docs[i].ID == doc.ID {
			f.docs[i] = *doc
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeProjectRepo) Delete(_ context.Context, id int) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeProjectRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.docs)), nil
}
