package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 集成测试使用真实的数据库和Redis,测试完整的API流程
//
// 运行方式:
//   先启动服务(go run ./cmd/api),再执行
//   go test -v ./test/integration/...

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
	Data    json.RawMessage   `json:"data"`
}

// AuthData 注册/登录响应数据
type AuthData struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// BookData 图书响应数据
type BookData struct {
	ID              uint             `json:"id"`
	Title           string           `json:"title"`
	Authors         []string         `json:"authors"`
	Genres          []string         `json:"genres"`
	Description     string           `json:"description"`
	CoverPath       string           `json:"cover_path"`
	Price           int64            `json:"price"`
	Publisher       string           `json:"publisher"`
	PublishedDate   string           `json:"published_date"`
	Rating          float64          `json:"rating"`
	NumberOfRatings int              `json:"number_of_ratings"`
	UploaderID      uint             `json:"uploader_id"`
	Reviews         []BookReviewData `json:"reviews,omitempty"`
}

// OrderData 订单响应数据
type OrderData struct {
	ID      uint   `json:"id"`
	OrderNo string `json:"order_no"`
	Total   int64  `json:"total"`
	Items   []struct {
		BookID   uint  `json:"book_id"`
		Quantity int   `json:"quantity"`
		Price    int64 `json:"price"`
		Subtotal int64 `json:"subtotal"`
	} `json:"items"`
}

// BookReviewData 图书详情里携带的评论数据
type BookReviewData struct {
	ID      uint   `json:"id"`
	UserID  uint   `json:"user_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewData 评论响应数据
type ReviewData struct {
	BookID          uint    `json:"book_id"`
	Rating          float64 `json:"rating"`
	NumberOfRatings int     `json:"number_of_ratings"`
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	jsonData, err := json.Marshal(data)
	require.NoError(t, err, "JSON序列化失败")

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	return do(t, req, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err, "创建HTTP请求失败")
	return do(t, req, token)
}

// PostMultipart 发送multipart表单(上架/修改图书)
// fields中的[]string字段转为重复表单字段;image非空时作为封面文件上传
func PostMultipart(t *testing.T, method, url string, fields map[string]interface{}, image []byte, token string) *Response {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				require.NoError(t, w.WriteField(key, item))
			}
		default:
			require.NoError(t, w.WriteField(key, fmt.Sprintf("%v", v)))
		}
	}

	if image != nil {
		// CreateFormFile固定Content-Type为octet-stream,封面校验需要真实MIME
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="image"; filename="cover.png"`)
		header.Set("Content-Type", "image/png")
		part, err := w.CreatePart(header)
		require.NoError(t, err, "创建文件表单失败")
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", w.FormDataContentType())

	return do(t, req, token)
}

func do(t *testing.T, req *http.Request, token string) *Response {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(body))

	return &result
}

// GenerateTestEmail 生成唯一的测试邮箱
// 使用纳秒时间戳避免测试重复运行时邮箱冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// SignupTestUser 注册测试用户并返回Token
// 注册接口直接返回Token,无需再登录一次
func SignupTestUser(t *testing.T, name string) (email string, token string) {
	email = GenerateTestEmail(name)
	resp := PostJSON(t, BaseURL+"/users/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": "Test1234",
	}, "")
	require.Equal(t, 0, resp.Code, "注册失败: %s", resp.Message)

	var data AuthData
	require.NoError(t, json.Unmarshal(resp.Data, &data), "解析注册响应失败")
	require.NotEmpty(t, data.Token, "注册应返回Token")

	return email, data.Token
}

// testPNG 最小合法PNG文件(1×1像素),上架图书的封面用
var testPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

// PublishTestBook 上架测试图书并返回图书数据
func PublishTestBook(t *testing.T, token, title string, price int64) *BookData {
	resp := PostMultipart(t, http.MethodPost, BaseURL+"/books", map[string]interface{}{
		"title":         title,
		"authors":       []string{"测试作者"},
		"genres":        []string{"technology"},
		"description":   "集成测试用图书",
		"price":         price,
		"publisher":     "测试出版社",
		"publishedDate": "2023-05-01",
	}, testPNG, token)
	require.Equal(t, 0, resp.Code, "图书上架失败: %s", resp.Message)

	var data BookData
	require.NoError(t, json.Unmarshal(resp.Data, &data), "解析图书响应失败")
	return &data
}
