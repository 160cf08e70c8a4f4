package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"
)

// idResponse is the id payload returned by the create endpoints
type idResponse struct {
	ID int `json:"id"`
}

type companyPayload struct {
	Name string `json:"name"`
}

type departmentPayload struct {
	CompanyID int    `json:"companyId"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
}

type passportPayload struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type employeePayload struct {
	Name         string          `json:"name"`
	Surname      string          `json:"surname"`
	Phone        string          `json:"phone"`
	CompanyID    int             `json:"companyId"`
	DepartmentID int             `json:"departmentId"`
	Passport     passportPayload `json:"passport"`
}

var departmentNames = []string{"Engineering", "Sales", "Support", "Finance", "Logistics"}

var firstNames = []string{"Ivan", "Anna", "Pyotr", "Olga", "Sergey", "Maria", "Dmitry", "Elena"}

var lastNames = []string{"Petrov", "Ivanova", "Sidorov", "Kuznetsova", "Smirnov", "Popova"}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	companies := flag.Int("companies", 3, "Number of companies to create")
	departments := flag.Int("departments", 2, "Departments per company")
	employees := flag.Int("employees", 5, "Employees per department")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	created := struct{ companies, departments, employees int }{}

	for c := 0; c < *companies; c++ {
		companyID, err := post(client, *baseURL+"/api/company", companyPayload{
			Name: fmt.Sprintf("Demo Company %d", c+1),
		})
		if err != nil {
			fail("creating company", err)
		}
		created.companies++

		for d := 0; d < *departments; d++ {
			departmentID, err := post(client, *baseURL+"/api/department", departmentPayload{
				CompanyID: companyID,
				Name:      departmentNames[d%len(departmentNames)],
				Phone:     fmt.Sprintf("+7 495 %03d %02d %02d", rand.Intn(1000), rand.Intn(100), rand.Intn(100)),
			})
			if err != nil {
				fail("creating department", err)
			}
			created.departments++

			for e := 0; e < *employees; e++ {
				_, err := post(client, *baseURL+"/api/employee", employeePayload{
					Name:         firstNames[rand.Intn(len(firstNames))],
					Surname:      lastNames[rand.Intn(len(lastNames))],
					Phone:        fmt.Sprintf("+7 9%02d %03d %02d %02d", rand.Intn(100), rand.Intn(1000), rand.Intn(100), rand.Intn(100)),
					CompanyID:    companyID,
					DepartmentID: departmentID,
					Passport: passportPayload{
						Type:   "internal",
						Number: fmt.Sprintf("%04d %06d", rand.Intn(10000), rand.Intn(1000000)),
					},
				})
				if err != nil {
					fail("creating employee", err)
				}
				created.employees++
			}
		}
	}

	fmt.Printf("Seeded %d companies, %d departments, %d employees\n",
		created.companies, created.departments, created.employees)
}

func post(client *http.Client, url string, payload any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var idResp idResponse
	if err := json.NewDecoder(resp.Body).Decode(&idResp); err != nil {
		return 0, err
	}
	return idResp.ID, nil
}

func fail(operation string, err error) {
	fmt.Fprintf(os.Stderr, "Failed %s: %v\n", operation, err)
	os.Exit(1)
}
