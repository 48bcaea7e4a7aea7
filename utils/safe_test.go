package utils

import (
	"errors"
	"testing"
)

func TestSafeMakeByteSlice(t *testing.T) {
	slice, err := SafeMakeByteSlice(100, MaxRandomLength)
	if err != nil || len(slice) != 100 {
		t.Errorf("SafeMakeByteSlice(100) failed: %v", err)
	}

	_, err = SafeMakeByteSlice(11, 10)
	if !errors.Is(err, ErrExceedsLimit) {
		t.Errorf("SafeMakeByteSlice exceeding limit: got %v", err)
	}

	_, err = SafeMakeByteSlice(-1, 10)
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("SafeMakeByteSlice negative: got %v", err)
	}
}

func TestCheckLength(t *testing.T) {
	if err := CheckLength(0, 10); err != nil {
		t.Errorf("CheckLength(0, 10) = %v", err)
	}
	if err := CheckLength(10, 10); err != nil {
		t.Errorf("CheckLength(10, 10) = %v", err)
	}
	if err := CheckLength(11, 10); err == nil {
		t.Error("CheckLength(11, 10) should fail")
	}
	if err := CheckLength(-1, 10); err == nil {
		t.Error("CheckLength(-1, 10) should fail")
	}
}

func TestCheckExactLength(t *testing.T) {
	if err := CheckExactLength([]byte{1, 2, 3, 4}, 4); err != nil {
		t.Errorf("CheckExactLength(4 bytes, 4) = %v", err)
	}
	if err := CheckExactLength([]byte{1, 2, 3}, 4); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("CheckExactLength(3 bytes, 4) = %v", err)
	}
	if err := CheckExactLength(nil, 0); err != nil {
		t.Errorf("CheckExactLength(nil, 0) = %v", err)
	}
}
