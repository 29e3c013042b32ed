/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  image.go - Manipulació dels fitxers imatge.
 *
 */

package imgs;

import (
  "fmt"
  "io"

  "github.com/adriagipas/sunxifw/utils"
)


/*********/
/* IMAGE */
/*********/

type Image interface {

  // Imprimeix la informació de la imatge en el fitxer especificat.
  // Cada línia s'imprimeix amb el prefix indicat.
  PrintInfo(file io.Writer, prefix string) error

  // Torna la llista plana de parts de la imatge, en l'ordre en què
  // apareixen en el medi.
  GetParts() ([]Part,error)

}


// Retorna la Imatge associada al fitxer expecificat. Si tot va bé
// error és nil.
func NewImage(file_name string) (Image,error) {

  // Obté tipus
  ftype,err := Detect ( file_name )
  if err != nil { return nil,err }

  // Crea imatge
  switch ftype {

  case TYPE_EGON:
    return newEGON ( file_name ),nil

  case TYPE_UBOOT:
    return newUBoot ( file_name ),nil

  case TYPE_MBR:
    return newMBR ( file_name ),nil

  case TYPE_GPT:
    return newGPT ( file_name ),nil

  default:
    return nil,fmt.Errorf ( "Unable to detect the image type for file '%s'",
      file_name)
  }

} // end NewImage


/********/
/* PART */
/********/

// Una regió contigua de la imatge que es pot llistar i extraure:
// una partició, una imatge de boot, una capçalera...
type Part struct {

  Name   string // Nom únic dins de la imatge
  Type   string // Descripció curta del tipus
  Offset int64  // Offset en bytes dins del fitxer
  Length int64  // Grandària en bytes

}


// Obri un lector sobre els bytes crus d'una part.
func OpenPart(file_name string, part Part) (utils.FileReader,error) {
  return utils.NewSubfileReader ( file_name, part.Offset, part.Length )
} // end OpenPart
