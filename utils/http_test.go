package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitWriteJSONWithStatus(t *testing.T) {
	Convey("Writes the supplied payload and status", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/test", nil)

		WriteJSONWithStatus(w, r, NewMessageResponse("order not found"), http.StatusNotFound)

		So(w.Code, ShouldEqual, http.StatusNotFound)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldContainSubstring, "order not found")
	})
}

func TestUnitWriteAjaxResponses(t *testing.T) {
	Convey("Success envelope is HTTP 200 with success true", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/express/orders", nil)

		WriteAjaxSuccess(w, r, map[string]string{"redirect": "/order-received/55"})

		var resp AjaxResponse
		So(w.Code, ShouldEqual, http.StatusOK)
		So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
		So(resp.Success, ShouldBeTrue)
	})

	Convey("Error envelope is still HTTP 200 with success false and code", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/callback/shipping", nil)

		WriteAjaxError(w, r, "no shipping options available", "NO_SHIPPING_OPTIONS")

		var resp AjaxResponse
		So(w.Code, ShouldEqual, http.StatusOK)
		So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
		So(resp.Success, ShouldBeFalse)
		So(resp.Code, ShouldEqual, "NO_SHIPPING_OPTIONS")
		So(resp.Message, ShouldEqual, "no shipping options available")
	})
}
