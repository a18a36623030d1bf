package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xqlib/bookapi/internal/application/book"
	"github.com/xqlib/bookapi/internal/domain/book"
	"github.com/xqlib/bookapi/internal/infrastructure/persistence/memory"
	"github.com/xqlib/bookapi/internal/interface/http/handler"
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// BookData 图书响应数据
type BookData struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// BookListData 图书列表响应数据
type BookListData struct {
	List  []BookData `json:"list"`
	Total int        `json:"total"`
}

// newTestRouter 组装一套完整的内存版服务用于HTTP测试
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := book.NewService(memory.NewBookRepository())
	h := handler.NewBookHandler(
		appbook.NewCreateBookUseCase(svc),
		appbook.NewListBooksUseCase(svc),
		appbook.NewGetBookUseCase(svc),
		appbook.NewUpdateBookUseCase(svc),
		appbook.NewDeleteBookUseCase(svc),
	)

	r := gin.New()
	v1 := r.Group("/api/v1")
	books := v1.Group("/books")
	{
		books.POST("", h.CreateBook)
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
	return r
}

// doJSON 发送JSON请求并解析统一响应
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (int, *Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code == http.StatusNoContent {
		assert.Empty(t, w.Body.Bytes(), "204响应不应有响应体")
		return w.Code, &Response{}
	}

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "解析JSON响应失败: %s", w.Body.String())
	return w.Code, &resp
}

func decodeBook(t *testing.T, raw json.RawMessage) BookData {
	t.Helper()
	var b BookData
	require.NoError(t, json.Unmarshal(raw, &b))
	return b
}

// TestCreateBookAPI 测试创建接口
func TestCreateBookAPI(t *testing.T) {
	r := newTestRouter()

	t.Run("正常创建返回201", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
			"title":  "沙丘",
			"author": "弗兰克·赫伯特",
			"price":  15.99,
		})

		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, 0, resp.Code)
		assert.Equal(t, "created", resp.Message)

		b := decodeBook(t, resp.Data)
		assert.Equal(t, uint(1), b.ID)
		assert.Equal(t, "沙丘", b.Title)
		assert.Equal(t, 15.99, b.Price)
		assert.True(t, b.Available, "available缺省应为true")
	})

	t.Run("显式指定available", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
			"title":     "绝版书",
			"author":    "无名氏",
			"price":     5.0,
			"available": false,
		})

		assert.Equal(t, http.StatusCreated, status)
		b := decodeBook(t, resp.Data)
		assert.False(t, b.Available)
	})

	t.Run("缺少书名返回400绑定错误", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
			"author": "作者",
			"price":  10,
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, 40901, resp.Code)
	})

	t.Run("空书名返回400绑定错误", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
			"title":  "",
			"author": "作者",
			"price":  10,
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, 40901, resp.Code)
	})

	t.Run("价格为0允许创建", func(t *testing.T) {
		status, _ := doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
			"title":  "免费书",
			"author": "作者",
			"price":  0,
		})

		assert.Equal(t, http.StatusCreated, status)
	})

	t.Run("缺少价格返回400", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
			"title":  "书名",
			"author": "作者",
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, 40901, resp.Code)
	})

	t.Run("负价格返回400", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
			"title":  "书名",
			"author": "作者",
			"price":  -5,
		})

		assert.Equal(t, http.StatusBadRequest, status)
		// 负数通过绑定,由领域校验拒绝
		assert.Equal(t, 40900, resp.Code)
	})

	t.Run("非数值价格返回400且与负数可区分", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
			"title":  "书名",
			"author": "作者",
			"price":  "十五块",
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, 40901, resp.Code)
		assert.Contains(t, resp.Message, "参数格式错误")
	})
}

// TestGetBookAPI 测试详情接口
func TestGetBookAPI(t *testing.T) {
	r := newTestRouter()

	_, created := doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
		"title":  "沙丘",
		"author": "弗兰克·赫伯特",
		"price":  15.99,
	})
	id := decodeBook(t, created.Data).ID

	t.Run("创建后读回原值", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodGet, "/api/v1/books/1", nil)

		assert.Equal(t, http.StatusOK, status)
		b := decodeBook(t, resp.Data)
		assert.Equal(t, id, b.ID)
		assert.Equal(t, "沙丘", b.Title)
		assert.Equal(t, "弗兰克·赫伯特", b.Author)
		assert.Equal(t, 15.99, b.Price)
	})

	t.Run("不存在的ID返回404", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodGet, "/api/v1/books/999", nil)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, 40402, resp.Code)
	})

	t.Run("非整数ID返回400", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodGet, "/api/v1/books/abc", nil)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, 40901, resp.Code)
	})
}

// TestUpdateBookAPI 测试更新接口
func TestUpdateBookAPI(t *testing.T) {
	r := newTestRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
		"title":  "沙丘",
		"author": "弗兰克·赫伯特",
		"price":  15.99,
	})

	t.Run("只更新价格其他字段不变", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodPut, "/api/v1/books/1", map[string]interface{}{
			"price": 9.99,
		})

		assert.Equal(t, http.StatusOK, status)
		b := decodeBook(t, resp.Data)
		assert.Equal(t, 9.99, b.Price)
		assert.Equal(t, "沙丘", b.Title)
		assert.Equal(t, "弗兰克·赫伯特", b.Author)
	})

	t.Run("不存在的ID返回404", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodPut, "/api/v1/books/999", map[string]interface{}{
			"price": 1,
		})

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, 40402, resp.Code)
	})

	t.Run("空书名返回400", func(t *testing.T) {
		status, resp := doJSON(t, r, http.MethodPut, "/api/v1/books/1", map[string]interface{}{
			"title": "",
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, 40901, resp.Code)
	})

	t.Run("负价格返回400", func(t *testing.T) {
		status, _ := doJSON(t, r, http.MethodPut, "/api/v1/books/1", map[string]interface{}{
			"price": -1,
		})

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

// TestDeleteBookAPI 测试删除接口
func TestDeleteBookAPI(t *testing.T) {
	r := newTestRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
		"title":  "沙丘",
		"author": "弗兰克·赫伯特",
		"price":  15.99,
	})

	t.Run("删除成功返回204", func(t *testing.T) {
		status, _ := doJSON(t, r, http.MethodDelete, "/api/v1/books/1", nil)
		assert.Equal(t, http.StatusNoContent, status)
	})

	t.Run("删除后读取返回404", func(t *testing.T) {
		status, _ := doJSON(t, r, http.MethodGet, "/api/v1/books/1", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("重复删除返回404", func(t *testing.T) {
		status, _ := doJSON(t, r, http.MethodDelete, "/api/v1/books/1", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

// TestBookAPIScenario 完整场景:创建两本、列表、改价、删除
func TestBookAPIScenario(t *testing.T) {
	r := newTestRouter()

	// 1. 创建两本图书
	status, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
		"title":  "沙丘",
		"author": "弗兰克·赫伯特",
		"price":  15.99,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, uint(1), decodeBook(t, resp.Data).ID)

	status, resp = doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
		"title":  "海伯利安",
		"author": "丹·西蒙斯",
		"price":  12.50,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, uint(2), decodeBook(t, resp.Data).ID)

	// 2. 列表按插入顺序返回两本
	status, resp = doJSON(t, r, http.MethodGet, "/api/v1/books", nil)
	require.Equal(t, http.StatusOK, status)
	var list BookListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "沙丘", list.List[0].Title)
	assert.Equal(t, "海伯利安", list.List[1].Title)

	// 3. 只改第一本的价格
	status, resp = doJSON(t, r, http.MethodPut, "/api/v1/books/1", map[string]interface{}{
		"price": 9.99,
	})
	require.Equal(t, http.StatusOK, status)
	b := decodeBook(t, resp.Data)
	assert.Equal(t, 9.99, b.Price)
	assert.Equal(t, "沙丘", b.Title)
	assert.Equal(t, "弗兰克·赫伯特", b.Author)

	// 4. 删除第二本
	status, _ = doJSON(t, r, http.MethodDelete, "/api/v1/books/2", nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = doJSON(t, r, http.MethodGet, "/api/v1/books/2", nil)
	assert.Equal(t, http.StatusNotFound, status)

	// 5. 新建的图书不会复用已删除的ID
	status, resp = doJSON(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
		"title":  "基地",
		"author": "艾萨克·阿西莫夫",
		"price":  18.00,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, uint(3), decodeBook(t, resp.Data).ID)
}

// TestListBooksAPIEmpty 空集合返回空列表
func TestListBooksAPIEmpty(t *testing.T) {
	r := newTestRouter()

	status, resp := doJSON(t, r, http.MethodGet, "/api/v1/books", nil)

	assert.Equal(t, http.StatusOK, status)
	var list BookListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.List)
	assert.Empty(t, list.List)
}
