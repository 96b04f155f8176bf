//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明：测试辅助工具
// 集成测试针对运行中的服务（localhost:8080），运行方式：
//
//	go test -tags integration ./test/integration/...
//
// 这个文件包含集成测试的通用辅助函数，遵循DRY原则
// 将重复的代码（HTTP请求、JSON解析）封装成可复用的函数

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BookData 图书响应数据
type BookData struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	TotalCopies     int    `json:"totalCopies"`
	AvailableCopies int    `json:"availableCopies"`
}

// MemberData 会员响应数据
type MemberData struct {
	ID              uint   `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Status          string `json:"status"`
	BorrowedBooks   int    `json:"borrowedBooks"`
	MaxBooksAllowed int    `json:"maxBooksAllowed"`
}

// RecordData 借阅记录响应数据
type RecordData struct {
	ID           uint   `json:"id"`
	BookID       uint   `json:"bookId"`
	MemberID     uint   `json:"memberId"`
	BorrowDate   string `json:"borrowDate"`
	DueDate      string `json:"dueDate"`
	Status       string `json:"status"`
	LateFeeCents int64  `json:"lateFeeCents"`
	LateFee      string `json:"lateFee"`
}

// doJSON 发送HTTP请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(respBody, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(respBody))

	return &result
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
// 使用时间戳确保邮箱唯一性，避免测试重复运行时邮箱冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// GenerateTestISBN 生成唯一的测试ISBN
// ISBN-13格式：978 + 10位数字，使用时间戳的后10位确保唯一性
func GenerateTestISBN() string {
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("978%010d", timestamp%10000000000)
}

// RegisterTestStaff 注册测试馆员并返回Token
// 封装了注册+登录的完整流程，让测试更关注业务逻辑
func RegisterTestStaff(t *testing.T, name string) (email string, token string) {
	// 1. 注册
	email = GenerateTestEmail(name)
	registerReq := map[string]string{
		"email":    email,
		"password": "Test1234",
		"name":     name,
	}

	registerResp := PostJSON(t, BaseURL+"/staff/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	// 2. 登录
	loginReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/staff/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return email, loginData.AccessToken
}

// CreateTestBook 录入测试图书并返回图书ID
func CreateTestBook(t *testing.T, token string, title string, totalCopies int) uint {
	bookReq := map[string]interface{}{
		"title":       title,
		"author":      "测试作者",
		"isbn":        GenerateTestISBN(),
		"publisher":   "测试出版社",
		"totalCopies": totalCopies,
	}

	bookResp := PostJSON(t, BaseURL+"/books", bookReq, token)
	require.Equal(t, 0, bookResp.Code, "录入图书失败: %s", bookResp.Message)

	var bookData BookData
	err := json.Unmarshal(bookResp.Data, &bookData)
	require.NoError(t, err, "解析图书响应失败")

	return bookData.ID
}

// RegisterTestMember 登记测试会员并返回会员ID
func RegisterTestMember(t *testing.T, token string, firstName string) uint {
	memberReq := map[string]interface{}{
		"firstName": firstName,
		"lastName":  "Tester",
		"email":     GenerateTestEmail(firstName),
	}

	memberResp := PostJSON(t, BaseURL+"/members", memberReq, token)
	require.Equal(t, 0, memberResp.Code, "登记会员失败: %s", memberResp.Message)

	var memberData MemberData
	err := json.Unmarshal(memberResp.Data, &memberData)
	require.NoError(t, err, "解析会员响应失败")

	return memberData.ID
}

// GetTestBook 查询图书详情
func GetTestBook(t *testing.T, bookID uint) BookData {
	resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), "")
	require.Equal(t, 0, resp.Code, "查询图书失败: %s", resp.Message)

	var data BookData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析图书响应失败")
	return data
}

// GetTestMember 查询会员详情
func GetTestMember(t *testing.T, memberID uint) MemberData {
	resp := GetJSON(t, fmt.Sprintf("%s/members/%d", BaseURL, memberID), "")
	require.Equal(t, 0, resp.Code, "查询会员失败: %s", resp.Message)

	var data MemberData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析会员响应失败")
	return data
}
