package person_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frizen94/ERPRO/internal"
	"github.com/frizen94/ERPRO/internal/person"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPersonService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Person Service Suite")
}

// MockRepository implements person.Repository for testing.
type MockRepository struct {
	persons map[int64]*person.Person
	nextID  int64
	failErr error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{persons: make(map[int64]*person.Person), nextID: 1}
}

func (m *MockRepository) List(filters person.Filters) ([]*person.Person, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	var result []*person.Person
	for _, p := range m.persons {
		if p.IsActive {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *MockRepository) GetByID(id int64) (*person.Person, error) {
	p, ok := m.persons[id]
	if !ok || !p.IsActive {
		return nil, person.ErrPersonNotFound
	}
	return p, nil
}

func (m *MockRepository) GetByNationalID(nationalID string) (*person.Person, error) {
	for _, p := range m.persons {
		if p.NationalID == nationalID && p.IsActive {
			return p, nil
		}
	}
	return nil, person.ErrPersonNotFound
}

func (m *MockRepository) Create(p *person.Person) error {
	if m.failErr != nil {
		return m.failErr
	}
	for _, existing := range m.persons {
		if existing.NationalID == p.NationalID {
			return person.ErrDuplicateNationalID
		}
	}
	p.ID = m.nextID
	m.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.persons[p.ID] = p
	return nil
}

func (m *MockRepository) Update(id int64, patch map[string]interface{}) (*person.Person, error) {
	p, ok := m.persons[id]
	if !ok || !p.IsActive {
		return nil, person.ErrPersonNotFound
	}
	if name, ok := patch["full_name"].(string); ok {
		p.FullName = name
	}
	p.UpdatedAt = time.Now()
	return p, nil
}

func (m *MockRepository) SoftDelete(id int64) error {
	if p, ok := m.persons[id]; ok {
		p.IsActive = false
	}
	return nil
}

var _ = Describe("Person Service", func() {
	var (
		repo *MockRepository
		svc  *person.Service
	)

	validDTO := func() person.CreatePersonDTO {
		return person.CreatePersonDTO{
			FullName:   "Maria Souza",
			NationalID: "12345678901",
			BirthDate:  time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
			PersonType: person.TypeStaff,
		}
	}

	BeforeEach(func() {
		repo = NewMockRepository()
		svc = person.NewService(repo, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	Describe("CreatePerson", func() {
		It("creates a valid person", func() {
			p, err := svc.CreatePerson(validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ID).To(BeNumerically(">", 0))
			Expect(p.IsActive).To(BeTrue())
		})

		It("rejects an empty full name", func() {
			dto := validDTO()
			dto.FullName = ""

			_, err := svc.CreatePerson(dto)
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("rejects a malformed national ID", func() {
			dto := validDTO()
			dto.NationalID = "12ab"

			_, err := svc.CreatePerson(dto)
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown person type", func() {
			dto := validDTO()
			dto.PersonType = "visitor"

			_, err := svc.CreatePerson(dto)
			Expect(err).To(HaveOccurred())
		})

		It("surfaces the duplicate conflict from the repository", func() {
			_, err := svc.CreatePerson(validDTO())
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.CreatePerson(validDTO())
			Expect(err).To(MatchError(person.ErrDuplicateNationalID))
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
		})
	})

	Describe("UpdatePerson", func() {
		It("patches only the provided fields", func() {
			created, err := svc.CreatePerson(validDTO())
			Expect(err).NotTo(HaveOccurred())

			newName := "Maria S. Lima"
			updated, err := svc.UpdatePerson(created.ID, person.UpdatePersonDTO{FullName: &newName})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.FullName).To(Equal(newName))
			Expect(updated.NationalID).To(Equal("12345678901"))
		})

		It("returns not found for a missing person", func() {
			newName := "Nobody"
			_, err := svc.UpdatePerson(4242, person.UpdatePersonDTO{FullName: &newName})
			Expect(err).To(MatchError(person.ErrPersonNotFound))
		})
	})

	Describe("DeletePerson", func() {
		It("hides the person from subsequent reads", func() {
			created, err := svc.CreatePerson(validDTO())
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.DeletePerson(created.ID)).To(Succeed())

			_, err = svc.GetPerson(created.ID)
			Expect(err).To(MatchError(person.ErrPersonNotFound))
		})
	})
})
