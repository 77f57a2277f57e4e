package usecase

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "plain rupee symbol", text: "₹499", want: 499},
		{name: "thousands separator with decimals", text: "₹1,299.00", want: 1299},
		{name: "rs prefix", text: "Rs. 2,499", want: 2499},
		{name: "inr prefix", text: "INR 999", want: 999},
		{name: "mrp and sale price pick minimum", text: "MRP ₹2,000 Now ₹999", want: 999},
		{name: "decimal truncated", text: "₹599.99", want: 599},
		{name: "below plausible bound rejected", text: "₹5", want: 0},
		{name: "above plausible bound rejected", text: "₹9,99,99,999", want: 0},
		{name: "one implausible one plausible", text: "₹3 ₹450", want: 450},
		{name: "no digits", text: "Price on request", want: 0},
		{name: "empty", text: "", want: 0},
		{name: "bare number without currency", text: "1499", want: 1499},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePrice(tt.text); got != tt.want {
				t.Errorf("ParsePrice(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestScanPageForPrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "most frequent value wins over first seen",
			text: "₹12345 protection plan ... ₹599 deal of the day ... ₹599 after coupon ... Rs. 4 handling",
			want: 599,
		},
		{
			name: "tie broken by first seen",
			text: "₹799 today only. Also available at ₹899 in stores.",
			want: 799,
		},
		{
			name: "rs and inr prefixes counted",
			text: "Rs. 1,499 deal. INR 1499 at checkout.",
			want: 1499,
		},
		{
			name: "price label prefix",
			text: "Price: ₹349 inclusive of taxes",
			want: 349,
		},
		{
			name: "implausible values ignored",
			text: "₹2 cashback on orders above ₹9,99,99,999",
			want: 0,
		},
		{
			name: "unprefixed numbers ignored",
			text: "4.2 stars from 1532 ratings",
			want: 0,
		},
		{name: "empty page", text: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scanPageForPrice(tt.text); got != tt.want {
				t.Errorf("scanPageForPrice(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestToRupees(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "1,299.00", want: 1299, wantOK: true},
		{in: "10", want: 10, wantOK: true},
		{in: "500000", want: 500000, wantOK: true},
		{in: "9", want: 0, wantOK: false},
		{in: "500001", want: 0, wantOK: false},
		{in: "abc", want: 0, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := toRupees(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("toRupees(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
