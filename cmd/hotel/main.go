package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/srgjo27/hotel_management/internal/adapter/repository/flatfile"
	"github.com/srgjo27/hotel_management/internal/core/domain"
	"github.com/srgjo27/hotel_management/internal/core/services"
	"github.com/srgjo27/hotel_management/internal/core/validation"
	"github.com/srgjo27/hotel_management/internal/platform/clock"
	"github.com/srgjo27/hotel_management/internal/platform/config"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorOrange = "\033[38;5;214m"
	colorCream  = "\033[38;5;223m"
)

type app struct {
	cfg       config.Config
	in        *bufio.Reader
	inventory *services.InventoryService
	reporting *services.ReportingService
	validator *validation.Validator
}

func main() {
	cfg := config.Load()

	store := flatfile.NewGuestRecordStore(cfg.LedgerPath)
	v := validation.New()
	inventory := services.NewInventoryService(domain.NewRooms(cfg.RoomCount), store, clock.NewSystem(), v)
	reporting := services.NewReportingService(inventory, store)

	a := &app{
		cfg:       cfg,
		in:        bufio.NewReader(os.Stdin),
		inventory: inventory,
		reporting: reporting,
		validator: v,
	}

	a.welcome()
	a.run(context.Background())
}

func (a *app) run(ctx context.Context) {
	for {
		a.menu()
		choice, err := strconv.Atoi(a.readLine(""))
		if err != nil {
			fmt.Println(colorRed + "Invalid input! Please enter a valid menu choice (1-8)." + colorReset)
			continue
		}

		switch choice {
		case 1:
			a.displayRooms()
		case 2:
			a.roomDetails()
		case 3:
			a.bookRoom(ctx)
		case 4:
			a.checkIn(ctx)
		case 5:
			a.guestLedger(ctx)
		case 6:
			a.checkOut(ctx)
		case 7:
			a.summary()
		case 8:
			fmt.Println(colorCream + "THANK YOU FOR VISITING OUR HOTEL" + colorReset)
			return
		default:
			fmt.Println(colorRed + "Invalid choice! Please try again." + colorReset)
		}
	}
}

func (a *app) welcome() {
	fmt.Println(colorCream + "*************************************************")
	fmt.Println("*                                               *")
	fmt.Printf("*               WELCOME TO                      *\n")
	fmt.Printf("*            %-18s                 *\n", a.cfg.HotelName)
	fmt.Println("*                                               *")
	fmt.Println("*************************************************" + colorReset)
	fmt.Printf("%s is equipped with all the general amenities\n", a.cfg.HotelName)
	fmt.Println("and facilities to ensure a memorable stay.")
	a.readLine("Press Enter to continue...")
}

func (a *app) menu() {
	fmt.Println(colorPurple + "\nHotel Management System" + colorReset)
	fmt.Println("1. Display Rooms")
	fmt.Println("2. View Room Details")
	fmt.Println("3. Book a Room")
	fmt.Println("4. Check In Room")
	fmt.Println("5. Display Customer Details")
	fmt.Println("6. Check Out Room")
	fmt.Println("7. Summary Report of all bookings")
	fmt.Println("8. Exit")
	fmt.Print(colorPurple + "Enter your choice: " + colorReset)
}

func (a *app) displayRooms() {
	fmt.Println(colorCream + "\nRoom Availability:" + colorReset)
	for i, room := range a.reporting.ListAll() {
		if i%10 == 0 {
			fmt.Println()
		}
		state := colorGreen + "(Free)" + colorReset
		if room.Booked {
			state = colorRed + "(Booked)" + colorReset
		}
		fmt.Printf("|Room%3d%s| ", room.RoomNumber, state)
	}
	fmt.Println()
}

func (a *app) roomDetails() {
	details, err := a.reporting.Describe(a.readRoomNumber("Enter Room Number to View Details: "))
	if err != nil {
		fmt.Println(colorRed + err.Error() + colorReset)
		return
	}

	fmt.Println(colorOrange+"Room Number:", details.RoomNumber)
	fmt.Println("Room Type:", details.Type)
	fmt.Println("Price Per Day: Rs:", details.PricePerDay)
	fmt.Println("Amenities:")
	for i, amenity := range details.Amenities {
		fmt.Printf("%d. %s\n", i+1, amenity)
	}
	fmt.Print(colorReset)
}

func (a *app) bookRoom(ctx context.Context) {
	req := services.BookRoomRequest{
		RoomNumber:    a.readRoomNumber("Enter Room Number to Book: "),
		GuestName:     a.readValidated("Enter Customer Name: ", a.validator.ValidateName),
		ContactNumber: a.readValidated("Enter Contact Number: ", a.validator.ValidateContactNumber),
		EmailAddress:  a.readValidated("Enter Email Address: ", a.validator.ValidateEmail),
		StayDays:      a.readValidated("Enter Number of Days for Stay: ", a.validator.ValidateStayDays),
		PaymentMethod: a.readValidated("Enter Payment Method (Cash/Credit): ", a.validator.ValidatePaymentMethod),
	}

	resp, err := a.inventory.Book(ctx, req)
	if resp != nil {
		fmt.Printf(colorGreen+"Room %d has been booked successfully!"+colorReset+"\n", resp.RoomNumber)
	}
	if err != nil {
		a.report(err)
	}
}

func (a *app) checkIn(ctx context.Context) {
	req := services.CheckInRequest{RoomNumber: a.readRoomNumber("Enter Room Number to Check In: ")}

	room, err := a.inventory.Lookup(req.RoomNumber)
	if err != nil {
		a.report(err)
		return
	}
	if room.Guest != nil && room.Guest.PaymentMethod == domain.PaymentCredit && room.Status == domain.RoomBooked {
		req.CardNumber = a.readLine("Enter your 16-digit credit card number: ")
	}

	resp, err := a.inventory.CheckIn(ctx, req)
	if resp != nil {
		fmt.Println(colorGreen + "\nBilling Details:" + colorReset)
		fmt.Println("Customer Name:", resp.GuestName)
		fmt.Println("Room Number:", resp.RoomNumber)
		fmt.Println("Room Type:", resp.RoomType)
		fmt.Println("Price Per Day: Rs.", resp.PricePerDay)
		fmt.Println("Number of Days:", resp.StayDays)
		fmt.Println("Payment Method:", resp.PaymentMethod)
		fmt.Println(colorOrange+"Total Bill: Rs.", resp.TotalBill, colorReset)
		fmt.Printf(colorGreen+"Room %d has been checked-in successfully at %s!"+colorReset+"\n", resp.RoomNumber, resp.CheckInTime)
	}
	if err != nil {
		a.report(err)
	}
}

func (a *app) guestLedger(ctx context.Context) {
	records, err := a.reporting.GuestLedger(ctx)
	if err != nil {
		fmt.Println(colorRed + "No customer data available!" + colorReset)
		return
	}

	fmt.Println(colorBlue + "Customer Details:" + colorReset)
	fmt.Printf("%-22s %-8s %-21s %-21s %-16s %-28s %s\n",
		"Customer Name", "Room No", "Check-in Time", "Check-out Time", "Contact Number", "Email Address", "Days Stay")
	for _, r := range records {
		checkOut := r.CheckOutTime
		if !r.CheckedOut() {
			checkOut = colorRed + "Not Checked Out" + colorReset + "      "
		}
		fmt.Printf("%-22s %-8d %-21s %-21s %-16s %-28s %d\n",
			r.Name, r.RoomNumber, r.CheckInTime, checkOut, r.ContactNumber, r.EmailAddress, r.StayDays)
	}
}

func (a *app) checkOut(ctx context.Context) {
	resp, err := a.inventory.CheckOut(ctx, a.readRoomNumber("Enter Room Number to Check Out: "))
	if resp != nil {
		fmt.Printf(colorGreen+"Room %d has been checked out successfully!"+colorReset+"\n", resp.RoomNumber)
	}
	if err != nil {
		a.report(err)
	}
}

func (a *app) summary() {
	fmt.Println(colorOrange + "\nSummary Report of Bookings and Room Statuses" + colorReset)
	fmt.Printf("%-25s %-12s %-10s %-12s %s\n", "Guest Name", "Room Number", "Room Type", "Status", "Check-In Time")
	for _, room := range a.reporting.Summary() {
		status := colorGreen + "Available" + colorReset + "   "
		if room.Status != domain.RoomFree {
			status = colorRed + "Booked" + colorReset + "      "
		}
		fmt.Printf("%-25s %-12d %-10s %-12s %s\n", room.GuestName, room.RoomNumber, room.Type, status, room.CheckInTime)
	}
}

// report renders a failure. A ledger divergence arrives here after the
// success line has already printed, so the guest sees both.
func (a *app) report(err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrStoreUnavailable):
		fmt.Println(colorRed + "Warning: ledger not updated: " + err.Error() + colorReset)
	default:
		fmt.Println(colorRed + err.Error() + colorReset)
	}
}

func (a *app) readLine(prompt string) string {
	if prompt != "" {
		fmt.Print(colorBlue + prompt + colorReset)
	}
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) readRoomNumber(prompt string) int {
	for {
		n, err := strconv.Atoi(a.readLine(prompt))
		if err != nil {
			fmt.Println(colorRed + "Invalid input! Please enter a valid room number (integer)." + colorReset)
			continue
		}
		return n
	}
}

// readValidated re-prompts until the field validator accepts the input.
func (a *app) readValidated(prompt string, validate func(string) error) string {
	for {
		s := a.readLine(prompt)
		if err := validate(s); err != nil {
			fmt.Println(colorRed + err.Error() + colorReset)
			continue
		}
		return s
	}
}
