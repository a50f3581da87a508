package person_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/frizen94/ERPRO/internal/person"
	personPostgres "github.com/frizen94/ERPRO/internal/person/postgres"
	"github.com/frizen94/ERPRO/pkg/logger"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var _ = Describe("Person Handler Integration", func() {
	var router *chi.Mux

	createBody := `{
		"full_name": "Ana Silva",
		"national_id": "11122233344",
		"birth_date": "1990-05-14T00:00:00Z",
		"sex": "F",
		"marital_status": "single",
		"person_type": "staff"
	}`

	BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&person.Person{})).To(Succeed())

		repo := personPostgres.NewPersonRepository(db)
		service := person.NewService(repo, logger.L())
		handler := person.NewHandler(service)

		router = chi.NewRouter()
		router.Route("/persons", func(r chi.Router) {
			r.Get("/", handler.List)
			r.Post("/", handler.Create)
			r.Get("/{id}", handler.Get)
			r.Put("/{id}", handler.Update)
			r.Delete("/{id}", handler.Delete)
		})
	})

	doRequest := func(method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("creates a person and returns it with an id", func() {
		w := doRequest(http.MethodPost, "/persons", createBody)
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var created person.Person
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.ID).To(BeNumerically(">", 0))
		Expect(created.FullName).To(Equal("Ana Silva"))
	})

	It("rejects an invalid body with 400", func() {
		w := doRequest(http.MethodPost, "/persons", `{"full_name": ""}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 409 for a duplicate national id", func() {
		Expect(doRequest(http.MethodPost, "/persons", createBody).Code).To(Equal(http.StatusCreated))

		w := doRequest(http.MethodPost, "/persons", createBody)
		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("lists created persons", func() {
		Expect(doRequest(http.MethodPost, "/persons", createBody).Code).To(Equal(http.StatusCreated))

		w := doRequest(http.MethodGet, "/persons", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var persons []person.Person
		Expect(json.NewDecoder(w.Body).Decode(&persons)).To(Succeed())
		Expect(persons).To(HaveLen(1))
	})

	It("returns 404 for an unknown person", func() {
		w := doRequest(http.MethodGet, "/persons/4242", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("rejects a non-numeric id with 400", func() {
		w := doRequest(http.MethodGet, "/persons/abc", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("patches a person", func() {
		created := doRequest(http.MethodPost, "/persons", createBody)
		var p person.Person
		Expect(json.NewDecoder(created.Body).Decode(&p)).To(Succeed())

		w := doRequest(http.MethodPut, "/persons/1", `{"full_name": "Ana Souza"}`)
		Expect(w.Code).To(Equal(http.StatusOK))

		var updated person.Person
		Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
		Expect(updated.FullName).To(Equal("Ana Souza"))
		Expect(updated.NationalID).To(Equal(p.NationalID))
	})

	It("deletes a person and hides it afterwards", func() {
		Expect(doRequest(http.MethodPost, "/persons", createBody).Code).To(Equal(http.StatusCreated))

		Expect(doRequest(http.MethodDelete, "/persons/1", "").Code).To(Equal(http.StatusNoContent))
		Expect(doRequest(http.MethodGet, "/persons/1", "").Code).To(Equal(http.StatusNotFound))
	})
})
